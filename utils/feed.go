package utils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/wanjiru-dev/fakestore-api/models"
)

// FetchProducts pulls the product feed once. The feed body is the fakestore
// JSON array: id, title, price, description, category, image and a nested
// rating object.
func FetchProducts(feedURL string) ([]models.Product, error) {
	var products []models.Product

	client := resty.New().SetTimeout(15 * time.Second)
	resp, err := client.R().
		SetHeader("Accept", "application/json").
		SetResult(&products).
		Get(feedURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("feed request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return products, nil
}
