// Package profit contiene los adaptadores de solo lectura hacia la base del
// sistema administrativo (MySQL): el libro de gestiones y el directorio de
// vendedores. Es una conexión independiente de la base principal.
package profit

import (
	"fmt"

	"github.com/crmventas/negociaciones-api/pkg/config"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// NewDB abre y verifica la conexión MySQL al sistema administrativo.
func NewDB(cfg config.ProfitConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", cfg.MySQLDSN())
	if err != nil {
		return nil, fmt.Errorf("conectar profit: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	return db, nil
}
