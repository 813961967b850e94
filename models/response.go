package models

// Response is the generic JSON envelope for errors and simple acks. Every
// failure path returns Success=false with a human-readable message; typed
// response structs cover the success shapes.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
