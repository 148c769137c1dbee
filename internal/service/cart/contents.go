package cartservice

import "shopapi/internal/models"

// Contents is the result of decoding one stored cart row: either Decoded or
// Empty. Rows whose contents cannot be read are Empty and contribute nothing.
type Contents interface {
	IDs() []int
	isContents()
}

type Decoded struct {
	ProductIDs []int
}

func (d Decoded) IDs() []int {
	return d.ProductIDs
}

func (Decoded) isContents() {}

// Empty carries the decode error, if any, so callers can inspect why a row
// was skipped.
type Empty struct {
	Err error
}

func (Empty) IDs() []int {
	return nil
}

func (Empty) isContents() {}

func DecodeContents(raw string) Contents {
	ids, err := models.ParseContents(raw)
	if err != nil {
		return Empty{Err: err}
	}
	if len(ids) == 0 {
		return Empty{}
	}
	return Decoded{ProductIDs: ids}
}

// UniqueIDs returns every id referenced by contents exactly once, in the
// order it is first seen.
func UniqueIDs(contents []Contents) []int {
	seen := make(map[int]struct{})
	ids := make([]int, 0)
	for _, c := range contents {
		for _, id := range c.IDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// Hydrate replaces ids with products, keeping row order and then id order.
// Ids missing from products are dropped.
func Hydrate(contents []Contents, products map[int]models.Product) []models.Product {
	hydrated := make([]models.Product, 0)
	for _, c := range contents {
		for _, id := range c.IDs() {
			if p, ok := products[id]; ok {
				hydrated = append(hydrated, p)
			}
		}
	}
	return hydrated
}
