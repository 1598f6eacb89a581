package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"orderflow/web-svc/internal/domain"
)

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/menu/categories/",
		fallback: "Failed to fetch categories",
	}, &categories)
	return categories, err
}

func (c *Client) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	var category domain.Category

	body, err := jsonBody(map[string]string{"name": name})
	if err != nil {
		return category, err
	}

	err = c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/menu/categories/",
		body:        body,
		contentType: "application/json",
		fallback:    "Failed to add category",
	}, &category)
	return category, err
}

func (c *Client) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/menu/items/",
		fallback: "Failed to fetch menu items",
	}, &items)
	return items, err
}

func (c *Client) CreateMenuItem(ctx context.Context, form domain.MenuItemForm) (domain.MenuItem, error) {
	var item domain.MenuItem

	body, contentType, err := encodeMenuItemForm(form)
	if err != nil {
		return item, err
	}

	err = c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/menu/items/",
		body:        body,
		contentType: contentType,
		fallback:    "Failed to create menu item",
	}, &item)
	return item, err
}

func (c *Client) UpdateMenuItem(ctx context.Context, id int, form domain.MenuItemForm) (domain.MenuItem, error) {
	var item domain.MenuItem

	body, contentType, err := encodeMenuItemForm(form)
	if err != nil {
		return item, err
	}

	err = c.do(ctx, call{
		method:      http.MethodPatch,
		path:        fmt.Sprintf("/menu/items/%d/", id),
		body:        body,
		contentType: contentType,
		fallback:    "Failed to update menu item",
	}, &item)
	return item, err
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/menu/items/%d/", id),
		fallback: "Failed to delete menu item",
	}, nil)
}

func encodeMenuItemForm(form domain.MenuItemForm) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := []struct{ key, value string }{
		{"name", form.Name},
		{"description", form.Description},
		{"price", form.Price},
		{"category_id", strconv.Itoa(form.CategoryID)},
		{"is_available", strconv.FormatBool(form.IsAvailable)},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.key, field.value); err != nil {
			return nil, "", err
		}
	}

	if len(form.Image) > 0 {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, form.ImageName))
		contentType := form.ImageType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(form.Image); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}
