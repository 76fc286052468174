// seed şemayı hazırlar ve ilk admin kullanıcısını oluşturur.
//
// Kullanım: go run ./cmd/seed
// Kullanıcı adı ve parola SEED_ADMIN_USERNAME / SEED_ADMIN_PASSWORD ortam
// değişkenlerinden okunur; kullanıcı zaten varsa dokunulmaz.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/domain/entity"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/internal/infrastructure/postgres"
	"github.com/serky1911-source/iskaya-depo-takip-sistemi/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "yapılandırma yüklenemedi: %v\n", err)
		os.Exit(1)
	}

	username := os.Getenv("SEED_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD zorunlu")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL bağlantısı: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "şema hazırlanamadı: %v\n", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(pool)
	if _, err := userRepo.GetByUsername(ctx, username); err == nil {
		fmt.Printf("kullanıcı %q zaten var, atlanıyor\n", username)
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "kullanıcı sorgusu: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parola hash: %v\n", err)
		os.Exit(1)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "admin oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("admin kullanıcısı oluşturuldu: %s\n", username)
}
