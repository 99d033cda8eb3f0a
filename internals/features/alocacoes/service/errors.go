// internals/features/alocacoes/service/errors.go
package service

import "github.com/google/uuid"

// Erros tipados do gerenciador de alocações. Os controllers traduzem
// cada tipo para o envelope JSON (409/404/422) sem perder a referência
// à entidade bloqueadora.

// RefBloqueio identifica quem está impedindo a operação.
type RefBloqueio struct {
	Tipo string    `json:"tipo"` // "evento" | "veiculo" | "voluntario"
	ID   uuid.UUID `json:"id"`
	Nome string    `json:"nome"`
}

// ErroConflito: sobreposição de horário ou capacidade estourada.
type ErroConflito struct {
	Motivo string
	Ref    *RefBloqueio
}

func (e *ErroConflito) Error() string { return e.Motivo }

// ErroBloqueio: transição de estado não permitida (ex.: excluir
// voluntário com compromisso futuro).
type ErroBloqueio struct {
	Motivo string
	Ref    *RefBloqueio
}

func (e *ErroBloqueio) Error() string { return e.Motivo }

// ErroValidacao: entrada malformada ou referência cruzada inválida
// (ex.: carona em veículo de outro evento).
type ErroValidacao struct {
	Motivo string
}

func (e *ErroValidacao) Error() string { return e.Motivo }

// ErroNaoEncontrado: entidade inexistente ou já soft-deletada.
type ErroNaoEncontrado struct {
	Entidade string
}

func (e *ErroNaoEncontrado) Error() string { return e.Entidade + " não encontrado(a)" }
