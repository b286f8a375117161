// Package envelope builds the JSON bodies every list and detail endpoint
// returns. Field names and null-versus-present are part of the client
// contract:
//
//	limit/offset:  {success, message, total, data, limit, offset}
//	page/size:     {success, message, total, items, page, size, pages}
//	detail:        {success, message, data}
//
// An empty result is a success with the message MessageEmpty. A failure
// carries success=false, the reason in message, and no items.
package envelope

const (
	MessageSuccess = "Success"
	MessageEmpty   = "No se encontraron registros"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1
	DefaultSize  = 10
	MaxSize      = 1000
)

// OffsetParams are the limit/offset query parameters.
type OffsetParams struct {
	Offset int `query:"offset" validate:"gte=0"`
	Limit  int `query:"limit" validate:"gte=1,lte=100"`
}

func DefaultOffsetParams() OffsetParams {
	return OffsetParams{Offset: 0, Limit: DefaultLimit}
}

// SizeParams are the page/size query parameters. Page is 1-based; a size of
// zero asks for every row on one page.
type SizeParams struct {
	Page int `query:"page" validate:"gte=1"`
	Size int `query:"size" validate:"gte=0,lte=1000"`
}

func DefaultSizeParams() SizeParams {
	return SizeParams{Page: DefaultPage, Size: DefaultSize}
}

// Offset converts the page number into a row offset.
func (p SizeParams) Offset() int {
	if p.Page < 1 || p.Size < 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// OffsetPage is the limit/offset list envelope.
type OffsetPage[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Total   *int64 `json:"total"`
	Data    []T    `json:"data"`
	Limit   *int   `json:"limit"`
	Offset  *int   `json:"offset"`
}

// NewOffsetPage wraps one window of results. A zero total yields the empty
// form regardless of params.
func NewOffsetPage[T any](items []T, total int64, params OffsetParams) OffsetPage[T] {
	if total <= 0 {
		return OffsetPage[T]{Success: true, Message: MessageEmpty, Data: []T{}}
	}
	if items == nil {
		items = []T{}
	}
	limit, offset := params.Limit, params.Offset
	return OffsetPage[T]{
		Success: true,
		Message: MessageSuccess,
		Total:   &total,
		Data:    items,
		Limit:   &limit,
		Offset:  &offset,
	}
}

// OffsetFailure is the limit/offset envelope for a rejected request.
func OffsetFailure[T any](message string) OffsetPage[T] {
	return OffsetPage[T]{Success: false, Message: message, Data: []T{}}
}

// SizedPage is the page/size list envelope.
type SizedPage[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Total   *int64 `json:"total"`
	Items   []T    `json:"items"`
	Page    *int   `json:"page"`
	Size    *int   `json:"size"`
	Pages   *int   `json:"pages"`
}

// NewSizedPage wraps one page of results. A size below one is coerced to
// the total, which puts every row on page 1.
func NewSizedPage[T any](items []T, total int64, params SizeParams) SizedPage[T] {
	if total <= 0 {
		return SizedPage[T]{Success: true, Message: MessageEmpty, Items: []T{}}
	}
	if items == nil {
		items = []T{}
	}
	page, size := params.Page, params.Size
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size, page = int(total), 1
	}
	pages := Pages(total, size)
	return SizedPage[T]{
		Success: true,
		Message: MessageSuccess,
		Total:   &total,
		Items:   items,
		Page:    &page,
		Size:    &size,
		Pages:   &pages,
	}
}

// SizedFailure is the page/size envelope for a rejected request.
func SizedFailure[T any](message string) SizedPage[T] {
	return SizedPage[T]{Success: false, Message: message, Items: []T{}}
}

// Pages returns ceil(total/size), or 0 when size is not positive.
func Pages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// One is the detail envelope.
type One[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

func Found[T any](v *T) One[T] {
	return One[T]{Success: true, Message: MessageSuccess, Data: v}
}

func OneFailure[T any](message string) One[T] {
	return One[T]{Success: false, Message: message}
}
