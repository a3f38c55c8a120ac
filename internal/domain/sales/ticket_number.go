package sales

// NextTicketNumber devuelve el siguiente número de ticket del día a partir del último emitido.
// last = 0 significa que el usuario no tiene tickets ese día.
func NextTicketNumber(last int) int {
	if last < 1 {
		return 1
	}
	return last + 1
}
