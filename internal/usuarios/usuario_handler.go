package usuarios

import (
	"fmt"
	"strings"
	"time"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/audit"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/auth"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/listagem"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/validacao"

	"github.com/gofiber/fiber/v2"
)

// UsuarioResponse já sai com o cargo resolvido para texto; nenhuma tela
// precisa adivinhar o formato do papel depois daqui.
type UsuarioResponse struct {
	ID             uint   `json:"id"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	Cargo          string `json:"cargo"`
	TurmaID        *uint  `json:"turma_id"`
	TurmaNome      string `json:"turma_nome"`
	DataNascimento string `json:"data_nascimento"`
	CriadoEm       string `json:"criado_em"`
}

type CreateUsuarioRequest struct {
	Nome           string `json:"nome" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Telefone       string `json:"telefone" validate:"max=30"`
	Senha          string `json:"senha" validate:"required,min=6"`
	CargoID        *uint  `json:"cargo_id" validate:"required"`
	TurmaID        *uint  `json:"turma_id"`
	DataNascimento string `json:"data_nascimento"` // "2001-05-20"
}

type UpdateUsuarioRequest struct {
	Nome           *string `json:"nome"`
	Telefone       *string `json:"telefone"`
	Senha          *string `json:"senha"`
	CargoID        *uint   `json:"cargo_id"`
	TurmaID        *uint   `json:"turma_id"`
	DataNascimento *string `json:"data_nascimento"`
}

func usuarioParaResponse(u models.Usuario) UsuarioResponse {
	cargo := ""
	if u.Cargo != nil {
		cargo = u.Cargo.Nome
	}
	turmaNome := ""
	if u.Turma != nil {
		turmaNome = u.Turma.Nome
	}
	nascimento := ""
	if u.DataNascimento != nil {
		nascimento = u.DataNascimento.Format("2006-01-02")
	}
	return UsuarioResponse{
		ID:             u.ID,
		Nome:           u.Nome,
		Email:          u.Email,
		Telefone:       u.Telefone,
		Cargo:          cargo,
		TurmaID:        u.TurmaID,
		TurmaNome:      turmaNome,
		DataNascimento: nascimento,
		CriadoEm:       u.CreatedAt.Format("2006-01-02"),
	}
}

func comparadorUsuario(ordem string, dir listagem.Direcao) listagem.Comparador[UsuarioResponse] {
	switch ordem {
	case "criado_em":
		return listagem.PorDataOuNumero(func(u UsuarioResponse) string { return u.CriadoEm }, dir)
	case "email":
		return listagem.PorTexto(func(u UsuarioResponse) string { return u.Email }, dir)
	default:
		return listagem.PorTexto(func(u UsuarioResponse) string { return u.Nome }, dir)
	}
}

// GET /api/admin/usuarios?busca=&cargo=aluno,professor&ordem=nome&direcao=asc&pagina=1
func ListUsuariosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var usuarios []models.Usuario
		if err := database.DB.Preload("Cargo").Preload("Turma").Order("id asc").Find(&usuarios).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar usuários")
		}

		itens := make([]UsuarioResponse, 0, len(usuarios))
		for _, u := range usuarios {
			itens = append(itens, usuarioParaResponse(u))
		}

		resultado := listagem.Processar(itens, listagem.Parametros[UsuarioResponse]{
			Termo: c.Query("busca"),
			Acessores: []listagem.Acessor[UsuarioResponse]{
				func(u UsuarioResponse) string { return u.Nome },
				func(u UsuarioResponse) string { return u.Email },
				func(u UsuarioResponse) string { return u.Telefone },
			},
			Faceta:              func(u UsuarioResponse) string { return u.Cargo },
			FacetasSelecionadas: listagem.SepararFacetas(c.Query("cargo")),
			Comparador:          comparadorUsuario(c.Query("ordem"), listagem.DirecaoDaQuery(c)),
			Pagina:              c.QueryInt("pagina", 1),
		})

		return c.JSON(listagem.RespostaLista(resultado, c.Query("busca")))
	}
}

// GET /api/admin/usuarios/:id
func GetUsuarioHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var u models.Usuario
		if err := database.DB.Preload("Cargo").Preload("Turma").First(&u, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}
		return c.JSON(usuarioParaResponse(u))
	}
}

// POST /api/admin/usuarios
func CreateUsuarioHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUsuarioRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		body.Email = auth.NormalizarEmail(body.Email)
		body.Senha = auth.NormalizarSenha(body.Senha)

		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		var existente models.Usuario
		if err := database.DB.Where("email = ?", body.Email).First(&existente).Error; err == nil {
			return validacao.Responder(c, map[string]string{"email": "Este email já está cadastrado"})
		}

		var cargo models.Cargo
		if err := database.DB.First(&cargo, *body.CargoID).Error; err != nil {
			return validacao.Responder(c, map[string]string{"cargo_id": "Cargo não encontrado"})
		}

		if body.TurmaID != nil {
			var turma models.Turma
			if err := database.DB.First(&turma, *body.TurmaID).Error; err != nil {
				return validacao.Responder(c, map[string]string{"turma_id": "Turma não encontrada"})
			}
		}

		var nascimento *time.Time
		if body.DataNascimento != "" {
			d, err := time.Parse("2006-01-02", body.DataNascimento)
			if err != nil {
				return validacao.Responder(c, map[string]string{"data_nascimento": "Data deve estar no formato AAAA-MM-DD"})
			}
			nascimento = &d
		}

		hash, err := auth.GerarHash(body.Senha)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
		}

		u := models.Usuario{
			Nome:           body.Nome,
			Email:          body.Email,
			Telefone:       strings.TrimSpace(body.Telefone),
			Senha:          hash,
			CargoID:        body.CargoID,
			TurmaID:        body.TurmaID,
			DataNascimento: nascimento,
		}

		if err := database.DB.Create(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar usuário")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "usuario",
				EntidadeID:  u.ID,
				Acao:        models.AuditCriar,
				Descricao:   fmt.Sprintf("Usuário criado: %s", u.Email),
			})
		}

		database.DB.Preload("Cargo").Preload("Turma").First(&u, u.ID)
		return c.Status(fiber.StatusCreated).JSON(usuarioParaResponse(u))
	}
}

// PUT /api/admin/usuarios/:id
func UpdateUsuarioHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var u models.Usuario
		if err := database.DB.First(&u, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}

		var body UpdateUsuarioRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Nome != nil {
			nome := strings.TrimSpace(*body.Nome)
			if nome == "" {
				return validacao.Responder(c, map[string]string{"nome": "Campo obrigatório"})
			}
			u.Nome = nome
		}
		if body.Telefone != nil {
			u.Telefone = strings.TrimSpace(*body.Telefone)
		}
		if body.Senha != nil {
			senha := auth.NormalizarSenha(*body.Senha)
			if len(senha) < 6 {
				return validacao.Responder(c, map[string]string{"senha": "Mínimo de 6 caracteres"})
			}
			hash, err := auth.GerarHash(senha)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
			}
			u.Senha = hash
		}
		if body.CargoID != nil {
			var cargo models.Cargo
			if err := database.DB.First(&cargo, *body.CargoID).Error; err != nil {
				return validacao.Responder(c, map[string]string{"cargo_id": "Cargo não encontrado"})
			}
			u.CargoID = body.CargoID
		}
		if body.TurmaID != nil {
			var turma models.Turma
			if err := database.DB.First(&turma, *body.TurmaID).Error; err != nil {
				return validacao.Responder(c, map[string]string{"turma_id": "Turma não encontrada"})
			}
			u.TurmaID = body.TurmaID
		}
		if body.DataNascimento != nil && *body.DataNascimento != "" {
			d, err := time.Parse("2006-01-02", *body.DataNascimento)
			if err != nil {
				return validacao.Responder(c, map[string]string{"data_nascimento": "Data deve estar no formato AAAA-MM-DD"})
			}
			u.DataNascimento = &d
		}

		if err := database.DB.Save(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar usuário")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "usuario",
				EntidadeID:  u.ID,
				Acao:        models.AuditAtualizar,
				Descricao:   fmt.Sprintf("Usuário atualizado: %s", u.Email),
			})
		}

		database.DB.Preload("Cargo").Preload("Turma").First(&u, u.ID)
		return c.JSON(usuarioParaResponse(u))
	}
}

// DELETE /api/admin/usuarios/:id
func DeleteUsuarioHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var u models.Usuario
		if err := database.DB.First(&u, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
		}

		// Ninguém exclui a própria conta logado nela
		if autorID, ok := c.Locals(auth.CtxUsuarioIDKey).(uint); ok && autorID == u.ID {
			return fiber.NewError(fiber.StatusBadRequest, "Não é possível excluir o próprio usuário")
		}

		if err := database.DB.Delete(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir usuário")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "usuario",
				EntidadeID:  u.ID,
				Acao:        models.AuditExcluir,
				Descricao:   fmt.Sprintf("Usuário excluído: %s", u.Email),
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/cargos (usado pelos selects de formulário)
func ListCargosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cargos []models.Cargo
		if err := database.DB.Order("nome asc").Find(&cargos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar cargos")
		}

		res := make([]fiber.Map, 0, len(cargos))
		for _, cg := range cargos {
			res = append(res, fiber.Map{"id": cg.ID, "nome": cg.Nome})
		}
		return c.JSON(res)
	}
}
