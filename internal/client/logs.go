package client

import (
	"context"
	"time"

	"baby-tracker/internal/contract"
	"baby-tracker/internal/domain/logs"
)

type CreateFeedingInput struct {
	Type     string     `json:"type"`
	Amount   *int       `json:"amount,omitempty"`
	Duration *int       `json:"duration,omitempty"`
	Side     string     `json:"side,omitempty"`
	Time     *time.Time `json:"time,omitempty"`
}

// CreateSleepLogInput no expone duration: la deriva el servidor.
type CreateSleepLogInput struct {
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

type CreateDiaperLogInput struct {
	Type  string     `json:"type"`
	Time  *time.Time `json:"time,omitempty"`
	Notes string     `json:"notes,omitempty"`
}

type CreateGrowthLogInput struct {
	Height            *float64   `json:"height,omitempty"`
	Weight            *float64   `json:"weight,omitempty"`
	HeadCircumference *float64   `json:"headCircumference,omitempty"`
	Date              *time.Time `json:"date,omitempty"`
}

type CreateMemoryInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Emoji       string     `json:"emoji,omitempty"`
}

// fetchList y mutate concentran el patrón común de los cinco tipos:
// fetch cachea por (entidad, babyID); mutate invalida esa lista al éxito.

func fetchList[T any](ctx context.Context, c *Client, ep contract.Endpoint, babyID int64) ([]T, error) {
	key := listKey(ep.Path, babyID)
	if v, ok := c.cache.get(key); ok {
		return v.([]T), nil
	}

	var out []T
	if err := c.do(ctx, ep, map[string]any{"babyID": babyID}, nil, &out); err != nil {
		return nil, err
	}
	c.cache.set(key, out)
	return out, nil
}

func create[T any](ctx context.Context, c *Client, eps contract.LogEndpoints, babyID int64, in any) (T, error) {
	var out T
	if err := c.do(ctx, eps.Create, map[string]any{"babyID": babyID}, in, &out); err != nil {
		return out, err
	}
	c.cache.invalidate(listKey(eps.List.Path, babyID))
	return out, nil
}

func (c *Client) deleteLog(ctx context.Context, eps contract.LogEndpoints, babyID, id int64) error {
	if err := c.do(ctx, eps.Delete, map[string]any{"id": id}, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(listKey(eps.List.Path, babyID))
	return nil
}

func (c *Client) ListFeedings(ctx context.Context, babyID int64) ([]logs.Feeding, error) {
	return fetchList[logs.Feeding](ctx, c, contract.Feedings.List, babyID)
}

func (c *Client) CreateFeeding(ctx context.Context, babyID int64, in CreateFeedingInput) (logs.Feeding, error) {
	return create[logs.Feeding](ctx, c, contract.Feedings, babyID, in)
}

func (c *Client) DeleteFeeding(ctx context.Context, babyID, id int64) error {
	return c.deleteLog(ctx, contract.Feedings, babyID, id)
}

func (c *Client) ListSleepLogs(ctx context.Context, babyID int64) ([]logs.SleepLog, error) {
	return fetchList[logs.SleepLog](ctx, c, contract.SleepLogs.List, babyID)
}

func (c *Client) CreateSleepLog(ctx context.Context, babyID int64, in CreateSleepLogInput) (logs.SleepLog, error) {
	return create[logs.SleepLog](ctx, c, contract.SleepLogs, babyID, in)
}

func (c *Client) DeleteSleepLog(ctx context.Context, babyID, id int64) error {
	return c.deleteLog(ctx, contract.SleepLogs, babyID, id)
}

func (c *Client) ListDiaperLogs(ctx context.Context, babyID int64) ([]logs.DiaperLog, error) {
	return fetchList[logs.DiaperLog](ctx, c, contract.DiaperLogs.List, babyID)
}

func (c *Client) CreateDiaperLog(ctx context.Context, babyID int64, in CreateDiaperLogInput) (logs.DiaperLog, error) {
	return create[logs.DiaperLog](ctx, c, contract.DiaperLogs, babyID, in)
}

func (c *Client) DeleteDiaperLog(ctx context.Context, babyID, id int64) error {
	return c.deleteLog(ctx, contract.DiaperLogs, babyID, id)
}

func (c *Client) ListGrowthLogs(ctx context.Context, babyID int64) ([]logs.GrowthLog, error) {
	return fetchList[logs.GrowthLog](ctx, c, contract.GrowthLogs.List, babyID)
}

func (c *Client) CreateGrowthLog(ctx context.Context, babyID int64, in CreateGrowthLogInput) (logs.GrowthLog, error) {
	return create[logs.GrowthLog](ctx, c, contract.GrowthLogs, babyID, in)
}

func (c *Client) DeleteGrowthLog(ctx context.Context, babyID, id int64) error {
	return c.deleteLog(ctx, contract.GrowthLogs, babyID, id)
}

func (c *Client) ListMemories(ctx context.Context, babyID int64) ([]logs.Memory, error) {
	return fetchList[logs.Memory](ctx, c, contract.Memories.List, babyID)
}

func (c *Client) CreateMemory(ctx context.Context, babyID int64, in CreateMemoryInput) (logs.Memory, error) {
	return create[logs.Memory](ctx, c, contract.Memories, babyID, in)
}

func (c *Client) DeleteMemory(ctx context.Context, babyID, id int64) error {
	return c.deleteLog(ctx, contract.Memories, babyID, id)
}
