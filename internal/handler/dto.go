package handler

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CalendarResponse struct {
	Status string   `json:"status"`
	Events []string `json:"events"`
}

type NotifyResponse struct {
	Status    string `json:"status"`
	Delivered bool   `json:"delivered"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
	Type   string `json:"type"`
}
