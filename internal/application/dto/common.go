package dto

// Mensajes de error que los clientes existentes ya interpretan; no traducir.
const (
	MsgMissingParameters   = "Missing Required Parameters"
	MsgBusinessNotVerified = "This business is not verified!"
	MsgDeleteNotAllowed    = "You are not allowed to delete this business!"
	MsgDeleteFailed        = "Error while deleting business"
	MsgServerError         = "Server Error"
	MsgCORSRejected        = "Not allowed by CORS"
)

// ErrorResponse cuerpo de error de validación: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse resultado de una operación: {"success": bool}.
// ID se informa al crear; Error acompaña a success=false.
type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}
