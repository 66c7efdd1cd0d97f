package runtime

const (
	TransactionComputeBudget = uint64(200000)
	InvokeUnits              = uint64(1000)
)

type ComputeMeter struct {
	budget    uint64
	remaining uint64
}

func NewComputeMeter(budget uint64) *ComputeMeter {
	return &ComputeMeter{
		budget:    budget,
		remaining: budget,
	}
}

func (m *ComputeMeter) Consume(units uint64) error {
	if m.remaining < units {
		m.remaining = 0
		return ErrComputeBudgetExceeded
	}
	m.remaining -= units
	return nil
}

func (m *ComputeMeter) Remaining() uint64 {
	return m.remaining
}

func (m *ComputeMeter) Consumed() uint64 {
	return m.budget - m.remaining
}
