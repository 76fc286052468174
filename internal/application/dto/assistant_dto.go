package dto

// AskRequest depo asistanına sorulan soru.
type AskRequest struct {
	Question string `json:"question" validate:"required,min=3,max=500"`
}

// AskResponse asistanın düz metin yanıtı.
type AskResponse struct {
	Answer string `json:"answer"`
}
