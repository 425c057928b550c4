package dto

// ErrorResponse corpo de erro HTTP. O campo "detail" é o contrato
// histórico da API consumido pelo frontend.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse corpo de confirmação para operações sem payload.
type MessageResponse struct {
	Message string `json:"message"`
}
