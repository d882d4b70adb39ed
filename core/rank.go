package core

import (
	"sort"

	"github.com/nhollman/breeze/schema"
)

// RankItems sorts recommendation items by priority in descending order.
// The sort is stable so ties keep their original insertion order.
func RankItems(items []schema.RecommendationItem) []schema.RecommendationItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority > items[j].Priority
	})
	return items
}
