package service

import (
	"errors"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

var ErrEmptyQRContent = errors.New("qr content is empty")

type DefaultQRGenerator struct {
	BaseURL string
}

// ReviewLink encodes the page where a customer reviews orderNumber.
func (g DefaultQRGenerator) ReviewLink(orderNumber string) ([]byte, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, ErrEmptyQRContent
	}
	return qrcode.Encode(g.ReviewURL(orderNumber), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) ReviewURL(orderNumber string) string {
	return strings.TrimRight(g.BaseURL, "/") + "/leave-review?order=" + url.QueryEscape(orderNumber)
}

// Table encodes a link placed on restaurant tables; an empty link points at the menu.
func (g DefaultQRGenerator) Table(link string) ([]byte, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		link = strings.TrimRight(g.BaseURL, "/") + "/menu"
	}
	if link == "/menu" {
		return nil, ErrEmptyQRContent
	}
	return qrcode.Encode(link, qrcode.Medium, 256)
}
