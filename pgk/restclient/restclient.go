package restclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrRequestFailed - сетевая ошибка, таймаут или ответ с кодом вне 2xx
var ErrRequestFailed = errors.New("request failed")

type Config struct {
	Timeout time.Duration // 0 - таймаут библиотеки по умолчанию
}

type Client struct {
	client *resty.Client
	lg     *zap.SugaredLogger
}

func New(config Config, lg *zap.SugaredLogger) *Client {
	client := resty.New()
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}

	return &Client{
		client: client,
		lg:     lg,
	}
}

// Fetch - выполняет POST с JSON телом, если передан payload, иначе GET.
// Возвращает тело ответа; любой сбой транспорта оборачивает ErrRequestFailed.
func (c *Client) Fetch(ctx context.Context, url string, headers map[string]string, payload any) ([]byte, error) {
	req := c.client.R().
		SetContext(ctx).
		SetHeaders(headers)

	var (
		resp *resty.Response
		err  error
	)

	if payload != nil {
		c.lg.Infof("POST request to %s with payload %+v", url, payload)
		resp, err = req.SetBody(payload).Post(url)
	} else {
		c.lg.Infof("GET request to %s", url)
		resp, err = req.Get(url)
	}

	if err != nil {
		c.lg.Errorf("Error fetching data from %s: %v", url, err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if !resp.IsSuccess() {
		c.lg.Errorf("Error fetching data from %s: %s", url, resp.Status())
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, resp.Status())
	}

	return resp.Body(), nil
}
