package engine

import (
	"sort"
	"strings"

	"github.com/heritagepulse/pulse/internal/store"
)

// interestBonus is the flat score added when an article's category is one
// of the user's declared interests. Raw activity dominates once a
// category has been engaged with a few times; the bonus only nudges
// untouched-but-declared topics above the cold remainder.
const interestBonus = 2

// RankedArticle is a catalog entry with its computed feed score.
type RankedArticle struct {
	store.Article
	Score int `json:"score"`
}

// Rank orders the catalog by combined interest and activity signal:
// score = activity[category] + interestBonus if the category is a
// declared interest (case-insensitive on both signals). The sort is
// stable, so tied articles keep their catalog order and a cold start
// (no interests, no activity) returns the catalog unchanged. Pure with
// respect to its inputs; callers fetch interests and activity from the
// ActivityStore immediately before calling.
func Rank(catalog []store.Article, interests []string, activity map[string]int) []RankedArticle {
	interestSet := make(map[string]bool, len(interests))
	for _, label := range interests {
		interestSet[strings.ToLower(label)] = true
	}

	ranked := make([]RankedArticle, len(catalog))
	for i, a := range catalog {
		key := strings.ToLower(a.Category)
		score := activity[key]
		if interestSet[key] {
			score += interestBonus
		}
		ranked[i] = RankedArticle{Article: a, Score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// PersonalizedFeed loads the catalog and the current personalization
// state and ranks the one by the other. State is re-read on every call:
// the store may have been mutated by tracking events since the last
// render.
func PersonalizedFeed(db *store.DB, activity *ActivityStore) ([]RankedArticle, error) {
	catalog, err := db.ListArticles()
	if err != nil {
		return nil, err
	}
	return Rank(catalog, activity.Interests(), activity.Scores()), nil
}
