package port

import (
	"context"

	"mobile-api-service/internal/core/domain"
)

// ListingsProviderPort определяет контракт клиента внешнего API объявлений.
type ListingsProviderPort interface {
	// FetchListings возвращает страницу объявлений по фильтру пользователя.
	// Ответ с неуспешным статусом считается пустой страницей; ошибки транспорта
	// возвращаются как domain.ErrUpstreamTimeout или domain.ErrUpstreamUnavailable.
	FetchListings(ctx context.Context, filter *domain.Filter, page domain.PageRequest) ([]domain.Advert, error)

	// FetchMissedCount возвращает число объявлений, появившихся после
	// последнего просмотренного. Неуспешный статус считается нулем.
	FetchMissedCount(ctx context.Context, filter *domain.Filter, page domain.PageRequest) (int, error)
}
