package constants

// Enums e catálogos do domínio (voluntários, veículos, eventos, alocações).
// As chaves são os valores gravados no banco; os mapas dão o rótulo de exibição.

// ==========================
// Voluntário
// ==========================
const (
	StatusVoluntarioAtivo   = "ativo"
	StatusVoluntarioInativo = "inativo"
)

var StatusVoluntario = []string{
	StatusVoluntarioAtivo,
	StatusVoluntarioInativo,
}

var TamanhosCamiseta = map[string]string{
	"P":     "P",
	"M":     "M",
	"G":     "G",
	"GG":    "GG",
	"XG":    "XG",
	"BL_P":  "Baby Look P",
	"BL_M":  "Baby Look M",
	"BL_G":  "Baby Look G",
	"BL_GG": "Baby Look GG",
}

var Agencias = map[string]string{
	"001": "001 - Matriz Patrocínio",
	"002": "002 - Agência Uberlândia",
	"003": "003 - Agência Guimarânia",
	"004": "004 - Agência Coromandel",
}

// ==========================
// Veículo
// ==========================
const (
	StatusVeiculoDisponivel   = "disponivel"
	StatusVeiculoManutencao   = "manutencao"
	StatusVeiculoIndisponivel = "indisponivel"
)

var TiposVeiculo = map[string]string{
	"sedan":  "Sedan",
	"suv":    "SUV",
	"van":    "Van",
	"pickup": "Pickup",
}

// ==========================
// Evento
// ==========================
const (
	StatusEventoPlanejamento = "planejamento"
	StatusEventoConfirmado   = "confirmado"
	StatusEventoEmAndamento  = "em_andamento"
	StatusEventoConcluido    = "concluido"
	StatusEventoCancelado    = "cancelado"
)

var StatusEvento = []string{
	StatusEventoPlanejamento,
	StatusEventoConfirmado,
	StatusEventoEmAndamento,
	StatusEventoConcluido,
	StatusEventoCancelado,
}

// ==========================
// Alocação de voluntário
// ==========================
const (
	FuncaoOutro = "outro"
)

var Funcoes = map[string]string{
	"coordenador":     "Coordenador do Evento",
	"motorista":       "Motorista",
	"apoio_logistico": "Apoio Logístico",
	"triagem":         "Triagem",
	"monitor":         "Monitor de Atividades",
	"fotografo":       "Fotógrafo/Registro",
	FuncaoOutro:       "Outro",
}

const (
	PresencaPendente   = "pendente"
	PresencaConfirmado = "confirmado"
	PresencaPresente   = "presente"
	PresencaAusente    = "ausente"
	PresencaCancelado  = "cancelado"
)

var StatusPresenca = []string{
	PresencaPendente,
	PresencaConfirmado,
	PresencaPresente,
	PresencaAusente,
	PresencaCancelado,
}

func ChaveValida(m map[string]string, k string) bool {
	_, ok := m[k]
	return ok
}

func ContemString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
