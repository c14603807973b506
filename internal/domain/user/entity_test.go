package user

import "testing"

func TestPasswordHashing(t *testing.T) {
	u, err := NewUser("amina", "Amina Sitoe", "", RoleManager, "shop-1", []Permission{PermissionSales})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if err := u.SetPassword("segredo1"); err != nil {
		t.Fatalf("erro ao configurar senha: %v", err)
	}

	if !u.CheckPassword("segredo1") {
		t.Errorf("senha correta deveria validar")
	}
	if u.CheckPassword("errada") {
		t.Errorf("senha incorreta não deveria validar")
	}
	if u.PasswordHash == "segredo1" {
		t.Errorf("a senha não pode ser armazenada em claro")
	}
}

func TestHasPermission(t *testing.T) {
	owner, _ := NewUser("dono", "Dono", "", RoleOwner, "", nil)
	if !owner.HasPermission(PermissionSettings) {
		t.Errorf("proprietário deveria ter todas as capacidades")
	}

	wildcard, _ := NewUser("super", "Super", "", RoleManager, "", []Permission{PermissionAll})
	if !wildcard.HasPermission(PermissionUsers) {
		t.Errorf("curinga deveria conceder todas as capacidades")
	}

	cashier, _ := NewUser("caixa", "Caixa", "", RoleCashier, "shop-1", []Permission{PermissionSales})
	if !cashier.HasPermission(PermissionSales) {
		t.Errorf("capacidade concedida deveria validar")
	}
	if cashier.HasPermission(PermissionSettings) {
		t.Errorf("capacidade não concedida não deveria validar")
	}
}

func TestCanAccessShop(t *testing.T) {
	owner, _ := NewUser("dono", "Dono", "", RoleOwner, "", nil)
	if !owner.CanAccessShop("qualquer") {
		t.Errorf("proprietário acessa todas as lojas")
	}

	unbound, _ := NewUser("livre", "Livre", "", RoleManager, "", nil)
	if !unbound.CanAccessShop("qualquer") {
		t.Errorf("usuário sem loja fixa é irrestrito")
	}

	bound, _ := NewUser("preso", "Preso", "", RoleCashier, "shop-1", nil)
	if !bound.CanAccessShop("shop-1") || bound.CanAccessShop("shop-2") {
		t.Errorf("usuário com loja fixa acessa apenas a própria loja")
	}
}

func TestNewUserValidation(t *testing.T) {
	if _, err := NewUser("", "Nome", "", RoleManager, "", nil); err != ErrEmptyUsername {
		t.Errorf("nome de usuário vazio deveria ser rejeitado, obtido %v", err)
	}
	if _, err := NewUser("x", "  ", "", RoleManager, "", nil); err != ErrEmptyName {
		t.Errorf("nome vazio deveria ser rejeitado, obtido %v", err)
	}
	if _, err := NewUser("x", "Nome", "", Role("root"), "", nil); err != ErrInvalidRole {
		t.Errorf("papel desconhecido deveria ser rejeitado, obtido %v", err)
	}
}
