package engine

import (
	"sort"
	"testing"

	"github.com/heritagepulse/pulse/internal/store"
)

func TestMergeUnionAndAdditive(t *testing.T) {
	s := testActivityStore(t)
	s.SetInterests([]string{"Heritage", "Dance"})
	s.RecordDelta("heritage", 4)
	s.RecordDelta("food", 2)

	r := NewReconciler(s)
	result, err := r.MergeAndSync(AccountData{
		Interests: []string{"Dance", "Music"},
		Activity:  map[string]int{"heritage": 10, "music": 3},
	})
	if err != nil {
		t.Fatalf("MergeAndSync: %v", err)
	}
	if !result.Success {
		t.Fatal("expected success")
	}

	// Union: every element from both sides exactly once
	wantInterests := []string{"Dance", "Heritage", "Music"}
	gotInterests := append([]string(nil), result.Interests...)
	sort.Strings(gotInterests)
	if len(gotInterests) != len(wantInterests) {
		t.Fatalf("merged interests = %v, want %v", result.Interests, wantInterests)
	}
	for i := range wantInterests {
		if gotInterests[i] != wantInterests[i] {
			t.Errorf("merged interests = %v, want %v", result.Interests, wantInterests)
			break
		}
	}

	// Additive: sums where both sides have the key, pass-through otherwise
	wantActivity := map[string]int{"heritage": 14, "food": 2, "music": 3}
	for k, want := range wantActivity {
		if result.Activity[k] != want {
			t.Errorf("merged[%q] = %d, want %d", k, result.Activity[k], want)
		}
	}
	if len(result.Activity) != len(wantActivity) {
		t.Errorf("merged activity has %d keys, want %d", len(result.Activity), len(wantActivity))
	}

	// The merge persisted
	if got := s.Scores()["heritage"]; got != 14 {
		t.Errorf("persisted heritage = %d, want 14", got)
	}
	if !s.SessionSynced() {
		t.Error("expected session synced after merge")
	}
}

func TestMergeIdempotentPerSession(t *testing.T) {
	s := testActivityStore(t)
	s.RecordDelta("dance", 5)

	r := NewReconciler(s)
	account := AccountData{Activity: map[string]int{"dance": 1}}

	first, err := r.MergeAndSync(account)
	if err != nil {
		t.Fatalf("first MergeAndSync: %v", err)
	}
	if first.Activity["dance"] != 6 {
		t.Fatalf("first merge dance = %d, want 6", first.Activity["dance"])
	}

	// Second call in the same session: no-op, zero writes
	second, err := r.MergeAndSync(account)
	if err != nil {
		t.Fatalf("second MergeAndSync: %v", err)
	}
	if !second.Success || second.Message != "already synced" {
		t.Errorf("second merge = %+v, want already synced", second)
	}
	if got := s.Scores()["dance"]; got != 6 {
		t.Errorf("dance after repeat merge = %d, want 6 (no double-count)", got)
	}
}

func TestMergeRunsAgainAfterLogout(t *testing.T) {
	s := testActivityStore(t)
	r := NewReconciler(s)

	if _, err := r.MergeAndSync(AccountData{Activity: map[string]int{"food": 1}}); err != nil {
		t.Fatalf("MergeAndSync: %v", err)
	}
	if err := r.EndSession(); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if s.SessionSynced() {
		t.Fatal("expected unsynced after logout")
	}

	result, err := r.MergeAndSync(AccountData{Activity: map[string]int{"food": 1}})
	if err != nil {
		t.Fatalf("MergeAndSync after logout: %v", err)
	}
	if result.Message == "already synced" {
		t.Error("expected a fresh merge after logout")
	}
	if got := s.Scores()["food"]; got != 2 {
		t.Errorf("food = %d, want 2", got)
	}
}

func TestMergeFailureLeavesSessionUnsynced(t *testing.T) {
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	s := NewActivityStore(db)
	r := NewReconciler(s)

	// A closed database fails every write.
	db.Close()

	result, err := r.MergeAndSync(AccountData{Interests: []string{"Music"}})
	if err == nil {
		t.Fatal("expected error from merge against closed db")
	}
	if result.Success {
		t.Error("expected Success=false on failed merge")
	}
}

func TestUnionInterests(t *testing.T) {
	tests := []struct {
		name           string
		local, account []string
		want           []string
	}{
		{"disjoint", []string{"a"}, []string{"b"}, []string{"a", "b"}},
		{"overlap", []string{"a", "b"}, []string{"b", "c"}, []string{"a", "b", "c"}},
		{"both empty", nil, nil, []string{}},
		{"duplicates within one side", []string{"a", "a"}, nil, []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unionInterests(tt.local, tt.account)
			if len(got) != len(tt.want) {
				t.Fatalf("union = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("union = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}
