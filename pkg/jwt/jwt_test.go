package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("unit-test-secret")

	token, err := GenerateToken(secret, 42, "alice", true, "access", time.Hour)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" || !claims.IsStaff {
		t.Errorf("身份信息不一致: %+v", claims)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), 1, "bob", false, "access", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken([]byte("secret-b"), "access", token); err == nil {
		t.Error("错误密钥应当解析失败")
	}
}

func TestParse_WrongType(t *testing.T) {
	token, err := GenerateToken([]byte("secret"), 1, "bob", false, "refresh", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken([]byte("secret"), "access", token); err == nil {
		t.Error("类型不匹配应当解析失败")
	}
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken([]byte("secret"), 1, "bob", false, "access", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken([]byte("secret"), "access", token); err == nil {
		t.Error("过期令牌应当解析失败")
	}
}
