package domain

import (
	"sort"

	"github.com/murkotick/storefront-service/internal/pkg/money"
)

// ProductBase is the product row joined with its category.
type ProductBase struct {
	ID          string
	Name        string
	InStock     bool
	Description string
	Brand       string
	Category    string
}

// ProductRecord accumulates the child rows of one product. Rows may arrive
// repeatedly (a multi-join yields the cartesian product of children) and in
// any order; each child is kept once, keyed by its stored position, and
// emitted in position order. A value stored at more than one position is
// emitted once, at its lowest position: gallery images by URL, prices by
// currency and amount, attribute items by value.
type ProductRecord struct {
	ProductBase

	galleryByPos map[int64]string
	pricesByPos  map[int64]Price
	sets         map[string]*setRecord
}

type setRecord struct {
	position int64
	set      AttributeSet
	itemsPos map[int64]AttributeItem
}

func NewProductRecord(base ProductBase) *ProductRecord {
	return &ProductRecord{
		ProductBase:  base,
		galleryByPos: make(map[int64]string),
		pricesByPos:  make(map[int64]Price),
		sets:         make(map[string]*setRecord),
	}
}

func (r *ProductRecord) AddGalleryImage(position int64, url string) {
	if url == "" {
		return
	}
	if _, ok := r.galleryByPos[position]; !ok {
		r.galleryByPos[position] = url
	}
}

func (r *ProductRecord) AddPrice(position int64, amount *money.Money, label, symbol string) {
	if amount == nil {
		return
	}
	if _, ok := r.pricesByPos[position]; !ok {
		r.pricesByPos[position] = Price{Amount: amount, CurrencyLabel: label, CurrencySymbol: symbol}
	}
}

func (r *ProductRecord) AddAttributeSet(id string, position int64, name, typ string) {
	if id == "" {
		return
	}
	if _, ok := r.sets[id]; ok {
		return
	}
	r.sets[id] = &setRecord{
		position: position,
		set:      AttributeSet{ID: id, Name: name, Type: typ},
		itemsPos: make(map[int64]AttributeItem),
	}
}

// AddAttributeItem attaches an item to a previously added set. Items with
// neither a display value nor a value are dropped.
func (r *ProductRecord) AddAttributeItem(setID string, position int64, displayValue, value string) {
	s, ok := r.sets[setID]
	if !ok {
		return
	}
	if displayValue == "" && value == "" {
		return
	}
	if _, ok := s.itemsPos[position]; !ok {
		s.itemsPos[position] = AttributeItem{DisplayValue: displayValue, Value: value}
	}
}

func (r *ProductRecord) gallery() []string {
	out := make([]string, 0, len(r.galleryByPos))
	seen := make(map[string]struct{}, len(r.galleryByPos))
	for _, pos := range sortedKeys(r.galleryByPos) {
		url := r.galleryByPos[pos]
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		out = append(out, url)
	}
	return out
}

func (r *ProductRecord) prices() []Price {
	out := make([]Price, 0, len(r.pricesByPos))
	seen := make(map[string]struct{}, len(r.pricesByPos))
	for _, pos := range sortedKeys(r.pricesByPos) {
		p := r.pricesByPos[pos]
		key := p.CurrencyLabel + " " + p.Amount.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

func (r *ProductRecord) attributeSets() []AttributeSet {
	recs := make([]*setRecord, 0, len(r.sets))
	for _, s := range r.sets {
		recs = append(recs, s)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].position != recs[j].position {
			return recs[i].position < recs[j].position
		}
		return recs[i].set.ID < recs[j].set.ID
	})

	out := make([]AttributeSet, 0, len(recs))
	for _, s := range recs {
		set := s.set
		set.Items = make([]AttributeItem, 0, len(s.itemsPos))
		seen := make(map[string]struct{}, len(s.itemsPos))
		for _, pos := range sortedKeys(s.itemsPos) {
			it := s.itemsPos[pos]
			if _, dup := seen[it.Value]; dup {
				continue
			}
			seen[it.Value] = struct{}{}
			set.Items = append(set.Items, it)
		}
		out = append(out, set)
	}
	return out
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
