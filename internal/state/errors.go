package state

import "errors"

// Erros de operação do contêiner de estado. Erros de validação rejeitam a
// operação sem nenhuma mutação parcial; autenticação falha sem distinguir
// usuário desconhecido de senha incorreta.
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUsernameTaken      = errors.New("nome de usuário já está em uso")
	ErrShopNotFound       = errors.New("loja não encontrada")
	ErrShopHasUsers       = errors.New("loja possui usuários ativos vinculados")
	ErrProductNotFound    = errors.New("produto não encontrado")
	ErrExpenseNotFound    = errors.New("despesa não encontrada")
	ErrInsufficientStock  = errors.New("estoque insuficiente na loja de origem")
)
