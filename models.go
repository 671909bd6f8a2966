package skypricebot

var ErrorCodeWithMessage = map[int]string{
	400: "Invalid request",
	401: "Authorization failed",
	403: "Forbidden",
	404: "No flights found",
	422: "Could not process the request",
	500: "Something went wrong, please try again later",
}

type ResponseError struct {
	StatusCode         int
	Description        interface{}
	ErrorMessage       string
	ClientErrorMessage string
}
