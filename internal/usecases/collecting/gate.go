package collecting

// Gate limita o número de unidades de trabalho com requisições em voo.
// Acquire bloqueia até haver vaga; Release devolve a vaga. A admissão é
// justa porém sem ordem garantida, e Acquire sempre termina — não há
// timeout.
type Gate struct {
	slots chan struct{}
}

func NewGate(max int) *Gate {
	if max <= 0 {
		max = 1
	}
	return &Gate{slots: make(chan struct{}, max)}
}

func (g *Gate) Acquire() {
	g.slots <- struct{}{}
}

func (g *Gate) Release() {
	<-g.slots
}

// InFlight retorna quantas vagas estão ocupadas no momento.
func (g *Gate) InFlight() int {
	return len(g.slots)
}
