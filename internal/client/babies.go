package client

import (
	"context"
	"time"

	"baby-tracker/internal/contract"
	"baby-tracker/internal/domain/babies"
)

// CreateBabyInput replica el cuerpo de creación del contrato: sin id ni
// createdAt, que son del servidor.
type CreateBabyInput struct {
	Name      string     `json:"name"`
	Gender    string     `json:"gender,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
}

// UpdateBabyInput es el PUT parcial: nil = no tocar el campo.
type UpdateBabyInput struct {
	Name      *string    `json:"name,omitempty"`
	Gender    *string    `json:"gender,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
}

func (c *Client) ListBabies(ctx context.Context) ([]babies.Baby, error) {
	key := listKey(contract.Babies.List.Path, 0)
	if v, ok := c.cache.get(key); ok {
		return v.([]babies.Baby), nil
	}

	var out []babies.Baby
	if err := c.do(ctx, contract.Babies.List, nil, nil, &out); err != nil {
		return nil, err
	}
	c.cache.set(key, out)
	return out, nil
}

func (c *Client) GetBaby(ctx context.Context, id int64) (babies.Baby, error) {
	var out babies.Baby
	err := c.do(ctx, contract.Babies.Get, map[string]any{"id": id}, nil, &out)
	return out, err
}

func (c *Client) CreateBaby(ctx context.Context, in CreateBabyInput) (babies.Baby, error) {
	var out babies.Baby
	if err := c.do(ctx, contract.Babies.Create, nil, in, &out); err != nil {
		return babies.Baby{}, err
	}
	c.cache.invalidate(listKey(contract.Babies.List.Path, 0))
	return out, nil
}

func (c *Client) UpdateBaby(ctx context.Context, id int64, in UpdateBabyInput) (babies.Baby, error) {
	var out babies.Baby
	if err := c.do(ctx, contract.Babies.Update, map[string]any{"id": id}, in, &out); err != nil {
		return babies.Baby{}, err
	}
	c.cache.invalidate(listKey(contract.Babies.List.Path, 0))
	return out, nil
}

func (c *Client) DeleteBaby(ctx context.Context, id int64) error {
	if err := c.do(ctx, contract.Babies.Delete, map[string]any{"id": id}, nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(listKey(contract.Babies.List.Path, 0))
	return nil
}
