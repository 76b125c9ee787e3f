package advisor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/porquinho-server/internal/money"
)

// RecentMonths is how many of the latest months go into a prompt.
const RecentMonths = 6

// Texts returned in place of generated advice.
const (
	MessageNotConfigured = "Configuração de API necessária para obter conselhos."
	MessageEmpty         = "Não foi possível gerar uma análise no momento."
	MessageUnavailable   = "Ocorreu um erro ao conectar com a inteligência financeira."
)

type MonthSummary struct {
	Month          string
	Income         decimal.Decimal
	Expenses       decimal.Decimal
	SavingsBalance decimal.Decimal
}

// BuildPrompt expects months in ascending order and keeps only the last
// RecentMonths of them.
func BuildPrompt(ownerName string, months []MonthSummary) string {
	if len(months) > RecentMonths {
		months = months[len(months)-RecentMonths:]
	}

	lines := make([]string, len(months))
	for i, m := range months {
		lines[i] = fmt.Sprintf("Mês: %s, Entrada: %s, Saída: %s, Guardado: %s",
			m.Month,
			money.FormatBRL(m.Income),
			money.FormatBRL(m.Expenses),
			money.FormatBRL(m.SavingsBalance),
		)
	}

	audience := "você"
	if ownerName != "" {
		audience = ownerName
	}

	return fmt.Sprintf(`Você é um consultor financeiro pessoal para %s.
Analise os dados financeiros dos últimos meses abaixo e dê um feedback curto, encorajador e prático (máximo 3 parágrafos).

Dados:
%s

Foque em:
1. A evolução do dinheiro guardado (Investimentos).
2. Se os gastos estão compatíveis com a entrada.
3. Sugira uma meta para o "Porquinho" (CDB de liquidez diária).

Use um tom amigável e direto.`, audience, strings.Join(lines, "\n"))
}

// CacheKey identifies a prompt; equal data yields an equal key.
func CacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "advice:" + hex.EncodeToString(sum[:])
}
