package skypricebot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

func DoRequest(ctx context.Context, url string, method string, body interface{}, headers map[string]interface{}) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(&body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewBuffer(data)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, err
	}

	if body != nil {
		request.Header.Add("Content-Type", "application/json")
	}

	for key, value := range headers {
		request.Header.Add(key, cast.ToString(value))
	}

	client := &http.Client{}
	resp, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respByte, err := io.ReadAll(resp.Body)
	if cast.ToInt(resp.StatusCode) > 300 {
		if err != nil {
			return nil, errors.New(string(respByte) + err.Error())
		}
		return respByte, errors.New(string(respByte))
	}

	return respByte, err
}

// DoFormRequest posts an application/x-www-form-urlencoded body, used for
// OAuth2 credential exchange.
func DoFormRequest(ctx context.Context, requestUrl string, form url.Values, headers map[string]interface{}) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, requestUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	request.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	for key, value := range headers {
		request.Header.Add(key, cast.ToString(value))
	}

	client := &http.Client{}
	resp, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respByte, err := io.ReadAll(resp.Body)
	if cast.ToInt(resp.StatusCode) > 300 {
		if err != nil {
			return nil, errors.New(string(respByte) + err.Error())
		}
		return respByte, errors.New(string(respByte))
	}

	return respByte, err
}
