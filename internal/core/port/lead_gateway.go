package port

import "context"

// LeadGatewayPort доставляет текст лида на HTTP-эндпоинт партнера.
type LeadGatewayPort interface {
	// Deliver подставляет сообщение в шаблон эндпоинта вместо {text}
	// и выполняет запрос. true означает, что партнер подтвердил получение.
	Deliver(ctx context.Context, endpointTemplate, message string) (bool, error)
}
