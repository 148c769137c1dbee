package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Product struct {
	Id          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Qty         int             `json:"qty"`
}

// ProductRecord is a product row as stored in the product table.
type ProductRecord struct {
	Id          int             `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Cost        decimal.Decimal `db:"cost"`
	Qty         int             `db:"qty"`
}

func (r ProductRecord) Product() Product {
	return Product{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		Cost:        r.Cost,
		Qty:         r.Qty,
	}
}

func (p Product) Record() ProductRecord {
	return ProductRecord{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Cost:        p.Cost,
		Qty:         p.Qty,
	}
}

// CartRow is one stored cart record. Contents holds a JSON array of product ids.
type CartRow struct {
	Id       int    `db:"id"`
	Username string `db:"username"`
	Contents string `db:"contents"`
}

// Cart is the hydrated view of every row stored for Username. Rows are merged,
// so no single row id belongs to it. Cost is the sum of Contents and is never
// stored.
type Cart struct {
	Username string          `json:"username"`
	Contents []Product       `json:"contents"`
	Cost     decimal.Decimal `json:"cost"`
}

func NewCart(username string, contents []Product) Cart {
	cost := decimal.Zero
	for _, p := range contents {
		cost = cost.Add(p.Cost)
	}

	return Cart{
		Username: username,
		Contents: contents,
		Cost:     cost,
	}
}

// ParseContents decodes a stored cart contents value into product ids.
func ParseContents(raw string) ([]int, error) {
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func FormatContents(ids []int) string {
	if len(ids) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(ids)
	return string(b)
}
