// admin.go - privacy-conscious visitor tracking and the admin dashboard
package site

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtmuztaba/portfolio/internal/config"
	"github.com/mtmuztaba/portfolio/internal/db"
)

const (
	adminCookie     = "admin_token"
	adminTokenHours = 24
)

// adminClaims is the admin session cookie payload.
type adminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type adminAuth struct {
	username     string
	passwordHash []byte
	password     string
	secret       []byte
	// hashingSalt keys the visitor IP hashes
	hashingSalt string
}

func newAdminAuth(cfg *config.Config) (*adminAuth, error) {
	a := &adminAuth{
		username:     cfg.AdminUsername,
		passwordHash: []byte(cfg.AdminPasswordHash),
		password:     cfg.AdminPassword,
		secret:       []byte(cfg.JWTSecret),
	}

	if len(a.secret) == 0 {
		token, err := randomToken()
		if err != nil {
			return nil, err
		}
		a.secret = []byte(token)
		log.Println("JWT_SECRET not set: admin sessions will not survive a restart")
	}

	salt, err := randomToken()
	if err != nil {
		return nil, err
	}
	a.hashingSalt = salt

	if len(a.passwordHash) == 0 && a.password == "" {
		log.Println("Admin login disabled: set ADMIN_PASSWORD_HASH to enable it")
	} else if len(a.passwordHash) == 0 && gin.Mode() == gin.DebugMode {
		log.Println("WARNING: Using plaintext ADMIN_PASSWORD. Set ADMIN_PASSWORD_HASH in production.")
	}
	return a, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// checkCredentials compares against the bcrypt hash, or the plaintext dev
// password when no hash is configured.
func (a *adminAuth) checkCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) != 1 {
		return false
	}
	if len(a.passwordHash) > 0 {
		return bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	}
	if a.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
}

func (a *adminAuth) issueToken() (string, error) {
	now := time.Now()
	claims := &adminClaims{
		Username: a.username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenHours * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (a *adminAuth) validateToken(tokenString string) (*adminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*adminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Username != a.username {
		return nil, errors.New("token for another user")
	}
	return claims, nil
}

func (s *Server) hashIP(ip string) string {
	return db.HashIP(ip, s.admin.hashingSalt)
}

// adminAuthMiddleware redirects to the login page without a valid token.
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		if _, err := s.admin.validateToken(token); err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// visitorTrackingMiddleware records page views with hashed IPs. Fragment
// requests, documents and admin pages are not tracked, and DNT is honored.
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/go/") ||
			strings.HasPrefix(path, "/admin/") ||
			c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		hashed := s.hashIP(c.ClientIP())
		userAgent := c.GetHeader("User-Agent")
		fullPath := c.Request.URL.RequestURI()
		go func() {
			if err := s.metrics.RecordVisit(context.Background(), hashed, userAgent, fullPath); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}

// CleanupOldVisitorData drops visits past the retention window.
func (s *Server) CleanupOldVisitorData(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	n, err := s.metrics.CleanupVisitors(ctx)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than 12 months", n)
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy", gin.H{"title": "Privacy Policy"})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if !s.admin.checkCredentials(username, password) {
			log.Printf("Failed admin login attempt from %s", s.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login", gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := s.admin.issueToken()
		if err != nil {
			log.Printf("Error issuing admin token: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"error": "Login failed"})
			return
		}
		c.SetCookie(adminCookie, token, 3600*adminTokenHours, "/admin", "", false, true)
		log.Printf("Admin login successful from %s", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.metrics.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard", gin.H{"stats": stats, "links": s.content.Links()})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.metrics.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/delete-visitor-data", func(c *gin.Context) {
		go s.CleanupOldVisitorData(context.Background())
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.metrics.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", s.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
