package domain

import (
	"strings"

	"video_platform_service/pkg/pagination"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidSortField sortBy is not one of SortFields
type ErrInvalidSortField struct {
	Field string
}

func (e *ErrInvalidSortField) Error() string {
	return "invalid sortBy field: " + e.Field
}

// ErrInvalidOwnerID userId is not an object id
type ErrInvalidOwnerID struct {
	Value string
}

func (e *ErrInvalidOwnerID) Error() string {
	return "invalid userId: " + e.Value
}

// DefaultSortField newest first unless asked otherwise
const DefaultSortField = "createdAt"

// SortFields fields a listing may be sorted by
var SortFields = []string{"createdAt", "updatedAt", "views", "duration", "title", "shares"}

// ListQuery raw listing parameters as received
type ListQuery struct {
	Page      string
	Limit     string
	Query     string
	SortBy    string
	SortOrder string
	UserID    string
}

// Filter conjunction applied to every listed video
type Filter struct {
	OwnerID       *primitive.ObjectID
	Text          string
	PublishedOnly bool
}

// Sort field and direction
type Sort struct {
	Field string
	Desc  bool
}

// ListPlan filter -> sort -> skip -> limit, always evaluated in that order
type ListPlan struct {
	Filter Filter
	Sort   Sort
	Page   pagination.Params
}

// Skip documents before the page
func (p ListPlan) Skip() int64 {
	return p.Page.Skip()
}

// Limit page size
func (p ListPlan) Limit() int64 {
	return int64(p.Page.Limit)
}

// BuildListPlan validate the raw query and compose the plan
func BuildListPlan(q ListQuery) (ListPlan, error) {
	plan := ListPlan{
		Filter: Filter{
			Text:          strings.TrimSpace(q.Query),
			PublishedOnly: true,
		},
		Sort: Sort{Field: DefaultSortField, Desc: true},
		Page: pagination.Parse(q.Page, q.Limit),
	}

	if uid := strings.TrimSpace(q.UserID); uid != "" {
		id, err := primitive.ObjectIDFromHex(uid)
		if err != nil {
			return ListPlan{}, &ErrInvalidOwnerID{Value: uid}
		}
		plan.Filter.OwnerID = &id
	}

	if field := strings.TrimSpace(q.SortBy); field != "" {
		if !isSortField(field) {
			return ListPlan{}, &ErrInvalidSortField{Field: field}
		}
		plan.Sort.Field = field
	}
	// 沒給 sortOrder 一律遞減
	switch strings.ToLower(strings.TrimSpace(q.SortOrder)) {
	case "asc", "1":
		plan.Sort.Desc = false
	}

	return plan, nil
}

func isSortField(field string) bool {
	for _, f := range SortFields {
		if f == field {
			return true
		}
	}
	return false
}
