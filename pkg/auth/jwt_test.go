package auth

import (
	"testing"

	"github.com/Qathar8/ums-portal/internal/domain/user"
)

func testUser(t *testing.T) *user.User {
	t.Helper()

	u, err := user.NewUser("amina", "Amina Sitoe", "amina@example.com", user.RoleManager, "shop-1", []user.Permission{user.PermissionSales})
	if err != nil {
		t.Fatalf("erro ao construir usuário: %v", err)
	}
	u.ID = "42"
	return u
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro ao criar serviço: %v", err)
	}

	token, err := svc.GenerateToken(testUser(t))
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("erro ao validar token: %v", err)
	}
	if claims.UserID != "42" || claims.Username != "amina" || claims.Role != "manager" || claims.ShopID != "shop-1" {
		t.Errorf("claims incoerentes: %+v", claims)
	}
	if claims.ID == "" {
		t.Errorf("token deveria carregar um identificador único (jti)")
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-a")
	svcA, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro ao criar serviço: %v", err)
	}
	token, err := svcA.GenerateToken(testUser(t))
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	t.Setenv("JWT_SECRET_KEY", "segredo-b")
	svcB, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro ao criar serviço: %v", err)
	}
	if _, err := svcB.ValidateToken(token); err == nil {
		t.Errorf("token assinado com outra chave deveria ser recusado")
	}
}

func TestMissingSecretKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := NewJWTService(); err != ErrMissingJWTKey {
		t.Errorf("esperado ErrMissingJWTKey, obtido %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro ao criar serviço: %v", err)
	}
	token, err := svc.GenerateToken(testUser(t))
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	refreshed, err := svc.RefreshToken(token)
	if err != nil {
		t.Fatalf("erro ao renovar token: %v", err)
	}
	claims, err := svc.ValidateToken(refreshed)
	if err != nil {
		t.Fatalf("token renovado deveria validar: %v", err)
	}
	if claims.UserID != "42" {
		t.Errorf("claims do token renovado incoerentes: %+v", claims)
	}
}
