package memory

// Sequence genera identificadores enteros estrictamente crecientes, nunca
// reutilizados. El valor inicial distingue visualmente cada tipo de entidad
// (categorías y proveedores desde 1, ítems desde 1001, órdenes desde 5001).
type Sequence struct {
	next int
}

// Semillas de las secuencias de ID por tipo de entidad.
const (
	categorySeqStart = 1
	supplierSeqStart = 1
	itemSeqStart     = 1001
	orderSeqStart    = 5001
)

// NewSequence crea una secuencia que arranca en start.
func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

// Next devuelve el siguiente identificador y avanza la secuencia.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}
