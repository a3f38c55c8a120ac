package usecase

// Relojes fijos para tests del paquete usecase_test.

func (uc *ProductUseCase) SetClock(c Clock)      { uc.now = c }
func (uc *TicketUseCase) SetClock(c Clock)       { uc.now = c }
func (uc *TicketItemUseCase) SetClock(c Clock)   { uc.now = c }
func (uc *CashMovementUseCase) SetClock(c Clock) { uc.now = c }
func (uc *SessionEventUseCase) SetClock(c Clock) { uc.now = c }
