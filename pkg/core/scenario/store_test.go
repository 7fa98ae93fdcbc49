package scenario

import (
	"testing"

	"econ_explorer/pkg/models"
)

func TestSaveUpsertsByCapitalName(t *testing.T) {
	s := NewStore()
	s.Save(models.Scenario{CapitalName: "Standard Oven", MaxProfit: 95, OptimalLabour: 5})
	s.Save(models.Scenario{CapitalName: "Double Oven", MaxProfit: 210, OptimalLabour: 6})
	// Re-save the first capital with new values.
	s.Save(models.Scenario{CapitalName: "Standard Oven", MaxProfit: 130, OptimalLabour: 4})

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("Expected 2 scenarios after upsert, got %d", len(all))
	}
	// Position preserved, values replaced.
	if all[0].CapitalName != "Standard Oven" || all[0].MaxProfit != 130 || all[0].OptimalLabour != 4 {
		t.Errorf("Expected replaced entry in place, got %+v", all[0])
	}
	if all[1].CapitalName != "Double Oven" {
		t.Errorf("Expected second entry untouched, got %+v", all[1])
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Save(models.Scenario{CapitalName: "Standard Oven"})
	s.Clear()
	if got := len(s.All()); got != 0 {
		t.Errorf("Expected empty store after Clear, got %d", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Save(models.Scenario{CapitalName: "Standard Oven", MaxProfit: 95})
	all := s.All()
	all[0].MaxProfit = -1
	if s.All()[0].MaxProfit != 95 {
		t.Errorf("Mutating the returned slice must not affect the store")
	}
}
