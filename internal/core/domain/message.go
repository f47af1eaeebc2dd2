package domain

// EmailMessage - письмо для отправки через почтового провайдера.
type EmailMessage struct {
	To        string
	Subject   string
	PlainText string
	// HTML - необязательное HTML-представление письма.
	HTML string
}
