package queries

import (
	"context"
	"strconv"
	"time"

	"loyalty-engine/internal/domain/conversion"
	"loyalty-engine/internal/usecase/shared"
)

//go:generate mockgen -source=conversion.go -destination=../../../tests/mock/queries/conversion_mock.go -package=queriesmock

type ConversionReadStore interface {
	Latest(ctx context.Context) (*conversion.Entry, error)
	History(ctx context.Context, limit int32) ([]*conversion.Entry, error)
	HistoryAfter(ctx context.Context, afterAt time.Time, afterID int64, limit int32) ([]*conversion.Entry, error)
}

type ConversionQueries interface {
	Current(ctx context.Context) (*ConversionRateView, error)
	History(ctx context.Context, cursor *Cursor, limit int) ([]*ConversionRateEntryView, *Cursor, error)
}

type conversionQueriesImpl struct {
	store    ConversionReadStore
	settings shared.LoyaltySettings
}

func NewConversionQueries(store ConversionReadStore, settings shared.LoyaltySettings) ConversionQueries {
	return &conversionQueriesImpl{
		store:    store,
		settings: settings,
	}
}

func (q *conversionQueriesImpl) Current(ctx context.Context) (*ConversionRateView, error) {
	latest, err := q.store.Latest(ctx)
	if err != nil {
		return nil, err
	}
	view := &ConversionRateView{Rate: conversion.Current(latest, q.settings.DefaultRate)}
	if latest != nil {
		view.UpdatedAt = &latest.ChangedAt
		view.UpdatedBy = &latest.ChangedBy
	}
	return view, nil
}

// History pages the rate changes over (changed_at, id), most recent first.
func (q *conversionQueriesImpl) History(ctx context.Context, cursor *Cursor, limit int) ([]*ConversionRateEntryView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*conversion.Entry
	var err error
	if !hasCursor(cursor) {
		rows, err = q.store.History(ctx, fetchLimit(limit))
	} else {
		afterAt, afterID, derr := decodeSeqCursor(cursor)
		if derr != nil {
			return nil, nil, invalidCursor()
		}
		rows, err = q.store.HistoryAfter(ctx, afterAt, afterID, fetchLimit(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.ChangedAt, strconv.FormatInt(last.ID, 10))}
		rows = rows[:limit]
	}
	out := make([]*ConversionRateEntryView, 0, len(rows))
	for _, e := range rows {
		out = append(out, NewConversionRateEntryView(e))
	}
	return out, next, nil
}
