package assets

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// Máquina de estados de custodia. Las únicas transiciones vía movimientos son:
//
//	IN_STOCK            --OUT-->  OUT
//	OUT | MAINTENANCE   --IN -->  IN_STOCK
//
// MAINTENANCE y DISPOSED solo se alcanzan por la anulación administrativa
// (AdminSetStatus), que también registra un movimiento OUT. DISPOSED es terminal.

// CanCheckOut indica si el estado actual permite registrar una salida.
func CanCheckOut(status string) bool {
	return status == entity.StatusInStock
}

// CanCheckIn indica si el estado actual permite registrar una entrada.
func CanCheckIn(status string) bool {
	return status == entity.StatusOut || status == entity.StatusMaintenance
}

// CanAdminSet indica si la anulación administrativa permite pasar de current a target.
// Solo admite como destino MAINTENANCE o DISPOSED; desde DISPOSED no se sale.
func CanAdminSet(current, target string) bool {
	if current == entity.StatusDisposed {
		return false
	}
	if current == target {
		return false
	}
	return target == entity.StatusMaintenance || target == entity.StatusDisposed
}
