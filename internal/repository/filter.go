package repository

import (
	"strings"
	"time"
)

// predicate contributes one optional SQL condition with its bind arguments.
// An empty clause means the parameter was absent and adds no constraint.
type predicate func() (clause string, args []any)

// buildWhere folds a list of predicates into a single conjunctive WHERE
// fragment. Supplying no parameters yields an empty fragment, i.e. "match
// everything". Predicates are independent, so combination order never
// changes the result. Clauses use `?` placeholders and must be passed
// through sqlx.Rebind before execution.
func buildWhere(preds []predicate) (string, []any) {
	var clauses []string
	var args []any
	for _, p := range preds {
		clause, a := p()
		if clause == "" {
			continue
		}
		clauses = append(clauses, clause)
		args = append(args, a...)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(clauses, " AND "), args
}

// ProductFilter holds the optional search parameters for product queries.
type ProductFilter struct {
	Q        string
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
	MaxStock *int
	Category string
}

// Where returns the conjunctive SQL fragment for all supplied parameters.
func (f ProductFilter) Where() (string, []any) {
	return buildWhere([]predicate{
		f.search,
		f.priceMin,
		f.priceMax,
		f.stockMin,
		f.stockMax,
		f.categoryEquals,
	})
}

// search matches a case-insensitive substring against name, sku, category
// or brand.
func (f ProductFilter) search() (string, []any) {
	q := strings.TrimSpace(f.Q)
	if q == "" {
		return "", nil
	}
	like := "%" + q + "%"
	return "(name ILIKE ? OR sku ILIKE ? OR category ILIKE ? OR brand ILIKE ?)",
		[]any{like, like, like, like}
}

func (f ProductFilter) priceMin() (string, []any) {
	if f.MinPrice == nil {
		return "", nil
	}
	return "price >= ?", []any{*f.MinPrice}
}

func (f ProductFilter) priceMax() (string, []any) {
	if f.MaxPrice == nil {
		return "", nil
	}
	return "price <= ?", []any{*f.MaxPrice}
}

func (f ProductFilter) stockMin() (string, []any) {
	if f.MinStock == nil {
		return "", nil
	}
	return "stock >= ?", []any{*f.MinStock}
}

func (f ProductFilter) stockMax() (string, []any) {
	if f.MaxStock == nil {
		return "", nil
	}
	return "stock <= ?", []any{*f.MaxStock}
}

// categoryEquals matches the category exactly, case-insensitively, after
// trimming the input.
func (f ProductFilter) categoryEquals() (string, []any) {
	c := strings.TrimSpace(f.Category)
	if c == "" {
		return "", nil
	}
	return "LOWER(category) = ?", []any{strings.ToLower(c)}
}

// OrderFilter holds the optional search parameters for order listings.
// The time bounds are already parsed; malformed date strings are dropped
// upstream and never reach this struct.
type OrderFilter struct {
	Customer      string
	MinTotal      *float64
	MaxTotal      *float64
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// Where returns the conjunctive SQL fragment for all supplied parameters.
func (f OrderFilter) Where() (string, []any) {
	return buildWhere([]predicate{
		f.customerContains,
		f.totalMin,
		f.totalMax,
		f.createdAfter,
		f.createdBefore,
	})
}

// customerContains matches a case-insensitive substring against customer
// name or email.
func (f OrderFilter) customerContains() (string, []any) {
	c := strings.TrimSpace(f.Customer)
	if c == "" {
		return "", nil
	}
	like := "%" + c + "%"
	return "(customer_name ILIKE ? OR customer_email ILIKE ?)", []any{like, like}
}

func (f OrderFilter) totalMin() (string, []any) {
	if f.MinTotal == nil {
		return "", nil
	}
	return "total >= ?", []any{*f.MinTotal}
}

func (f OrderFilter) totalMax() (string, []any) {
	if f.MaxTotal == nil {
		return "", nil
	}
	return "total <= ?", []any{*f.MaxTotal}
}

func (f OrderFilter) createdAfter() (string, []any) {
	if f.CreatedAfter == nil {
		return "", nil
	}
	return "created_at >= ?", []any{*f.CreatedAfter}
}

func (f OrderFilter) createdBefore() (string, []any) {
	if f.CreatedBefore == nil {
		return "", nil
	}
	return "created_at <= ?", []any{*f.CreatedBefore}
}
