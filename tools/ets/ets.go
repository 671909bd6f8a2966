package ets

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	sdk "github.com/asadbekGo/sky-price-bot"
)

// ETSRequest carries the scraped-session parameters for the B2B offers
// endpoint. The endpoint is cookie-authenticated and paginates with an opaque
// next_token, both captured from a browser session.
type ETSRequest struct {
	BaseURL   string      `json:"baseUrl"`
	Cookie    string      `json:"cookie"`
	RequestID string      `json:"request_id"`
	NextToken string      `json:"next_token"`
	Logger    *sdk.Logger `json:"-"`
}

type OffersResponse struct {
	Data []Offer `json:"data"`
}

type Offer struct {
	Price struct {
		Total string `json:"total"`
	} `json:"price"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	Itineraries            []struct {
		Segments []struct {
			CarrierCode string `json:"carrierCode"`
			Number      string `json:"number"`
		} `json:"segments"`
	} `json:"itineraries"`
}

func GetOffers(req ETSRequest) (offers OffersResponse, errorResponse sdk.ResponseError) {
	var headers = map[string]interface{}{
		"Cookie": req.Cookie,
	}

	var payload = map[string]interface{}{
		"request_id": req.RequestID,
		"sort":       "price",
		"next_token": req.NextToken,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel() // Ensure the cancel function is called to release resources

	body, err := sdk.DoRequest(ctx, req.BaseURL+"/api/air/offers", http.MethodPost, payload, headers)
	if err != nil {
		errorResponse.StatusCode = 500
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = req.Logger.ErrorLog.Sprint(err.Error())
		return offers, errorResponse
	}

	var response OffersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		errorResponse.StatusCode = 500
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = req.Logger.ErrorLog.Sprint(err.Error() + ", body: " + string(body))
		return offers, errorResponse
	}

	return response, errorResponse
}
