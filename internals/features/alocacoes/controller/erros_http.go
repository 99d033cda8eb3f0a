// internals/features/alocacoes/controller/erros_http.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"voluntariado_backend/internals/features/alocacoes/service"
	helper "voluntariado_backend/internals/helpers"
)

// JsonServiceError traduz os erros tipados do service para o envelope
// JSON padrão. Usado por todos os controllers que chamam o service de
// alocações (voluntários, veículos e eventos inclusive).
func JsonServiceError(c *fiber.Ctx, err error) error {
	var conflito *service.ErroConflito
	if errors.As(err, &conflito) {
		return helper.JsonConflict(c, conflito.Motivo, conflito.Ref)
	}

	var bloqueio *service.ErroBloqueio
	if errors.As(err, &bloqueio) {
		return helper.JsonConflict(c, bloqueio.Motivo, bloqueio.Ref)
	}

	var validacao *service.ErroValidacao
	if errors.As(err, &validacao) {
		return helper.JsonError(c, fiber.StatusBadRequest, validacao.Motivo)
	}

	var naoEncontrado *service.ErroNaoEncontrado
	if errors.As(err, &naoEncontrado) {
		return helper.JsonError(c, fiber.StatusNotFound, naoEncontrado.Error())
	}

	return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno ao processar alocação")
}
