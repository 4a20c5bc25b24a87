package memstore

import (
	"time"

	"github.com/coreforge/mrp/internal/core/domain"
)

// SeedInventory is the starting component stock. The store is process-local,
// so these quantities reappear on every restart.
func SeedInventory() []domain.InventoryItem {
	now := time.Now().UTC()
	return []domain.InventoryItem{
		{SKU: "DIE-Z4", Name: "Zen-class die, 4 core", Category: "die", Quantity: 480, Unit: "pcs", MinStock: 100, Location: "A-01", UpdatedAt: now},
		{SKU: "DIE-Z8", Name: "Zen-class die, 8 core", Category: "die", Quantity: 260, Unit: "pcs", MinStock: 80, Location: "A-02", UpdatedAt: now},
		{SKU: "SUB-AM5", Name: "AM5 substrate", Category: "substrate", Quantity: 900, Unit: "pcs", MinStock: 200, Location: "B-01", UpdatedAt: now},
		{SKU: "IHS-STD", Name: "Standard heat spreader", Category: "ihs", Quantity: 1200, Unit: "pcs", MinStock: 300, Location: "B-04", UpdatedAt: now},
		{SKU: "TIM-SLD", Name: "Solder TIM", Category: "tim", Quantity: 75, Unit: "kg", MinStock: 20, Location: "C-02", UpdatedAt: now},
		{SKU: "PKG-RTL", Name: "Retail box", Category: "packaging", Quantity: 2000, Unit: "pcs", MinStock: 500, Location: "D-01", UpdatedAt: now},
	}
}

// SeedTeam is the starting assembly roster.
func SeedTeam() []domain.Employee {
	return []domain.Employee{
		{ID: "emp-001", Name: "Carla Mendes", Position: "line lead", Department: domain.DeptAssembly, Shift: domain.ShiftMorning, Active: true},
		{ID: "emp-002", Name: "João Pereira", Position: "assembler", Department: domain.DeptAssembly, Shift: domain.ShiftMorning, Active: true},
		{ID: "emp-003", Name: "Renata Alves", Position: "test engineer", Department: domain.DeptTesting, Shift: domain.ShiftEvening, Active: true},
		{ID: "emp-004", Name: "Diego Santos", Position: "packer", Department: domain.DeptPackaging, Shift: domain.ShiftNight, Active: true},
	}
}
