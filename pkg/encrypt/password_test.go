package encrypt

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("my-password")
	if err != nil {
		t.Fatalf("哈希失败: %v", err)
	}
	if hash == "my-password" {
		t.Fatal("哈希不应等于明文")
	}
	if !VerifyPassword(hash, "my-password") {
		t.Error("正确密码应当通过校验")
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Error("错误密码不应通过校验")
	}
}
