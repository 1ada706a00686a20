package job

import (
	"testing"

	"doctorbot/internal/domain/entity"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestDiffMembersPartitions(t *testing.T) {
	existing := []entity.User{
		{ID: 1},                 // still present
		{ID: 2},                 // gone upstream
		{ID: 3, Deleted: true},  // returned
		{ID: 4, Deleted: true},  // stays gone, already deleted
	}
	upstream := []tgbotapi.User{
		{ID: 1, UserName: "alice"},
		{ID: 3, UserName: "carol"},
		{ID: 5, UserName: "eve", FirstName: "Eve"},
	}

	plan := diffMembers(existing, upstream)

	if len(plan.insert) != 1 || plan.insert[0].ID != 5 {
		t.Fatalf("insert = %v, want only id 5", plan.insert)
	}
	if plan.insert[0].Username != "eve" || plan.insert[0].FirstName != "Eve" {
		t.Errorf("insert did not carry profile fields: %+v", plan.insert[0])
	}
	if len(plan.reenable) != 1 || plan.reenable[0] != 3 {
		t.Errorf("reenable = %v, want [3]", plan.reenable)
	}
	if len(plan.softDelete) != 1 || plan.softDelete[0] != 2 {
		t.Errorf("softDelete = %v, want [2]", plan.softDelete)
	}
}

func TestDiffMembersBucketsAreDisjoint(t *testing.T) {
	existing := []entity.User{{ID: 1}, {ID: 2, Deleted: true}}
	upstream := []tgbotapi.User{{ID: 2}, {ID: 3}}

	plan := diffMembers(existing, upstream)

	seen := map[int64]string{}
	record := func(id int64, bucket string) {
		if prev, ok := seen[id]; ok {
			t.Fatalf("id %d appears in both %s and %s", id, prev, bucket)
		}
		seen[id] = bucket
	}
	for _, u := range plan.insert {
		record(u.ID, "insert")
	}
	for _, id := range plan.reenable {
		record(id, "reenable")
	}
	for _, id := range plan.softDelete {
		record(id, "softDelete")
	}
}

func TestDiffMembersIgnoresDuplicateUpstreamIDs(t *testing.T) {
	upstream := []tgbotapi.User{{ID: 7}, {ID: 7}, {ID: 7}}

	plan := diffMembers(nil, upstream)

	if len(plan.insert) != 1 {
		t.Fatalf("insert = %v, want a single entry for id 7", plan.insert)
	}
}

func TestDiffMembersEmptyUpstreamSoftDeletesEveryone(t *testing.T) {
	existing := []entity.User{{ID: 1}, {ID: 2}, {ID: 3, Deleted: true}}

	plan := diffMembers(existing, nil)

	if len(plan.insert) != 0 || len(plan.reenable) != 0 {
		t.Fatalf("unexpected inserts or reenables: %+v", plan)
	}
	if len(plan.softDelete) != 2 {
		t.Errorf("softDelete = %v, want ids 1 and 2", plan.softDelete)
	}
}
