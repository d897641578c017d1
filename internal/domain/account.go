package domain

import (
	"sort"
	"time"
)

// SellerAccount representa uma cabine de vendedor no marketplace.
// O token é resolvido uma única vez na inicialização e nunca muda
// durante a execução.
type SellerAccount struct {
	Name  string
	Token string
}

// AccountsFromMap converte o mapeamento nome -> token da configuração
// em uma lista ordenada por nome, para que as rodadas processem as
// contas em ordem estável.
func AccountsFromMap(tokens map[string]string) []SellerAccount {
	accounts := make([]SellerAccount, 0, len(tokens))
	for name, token := range tokens {
		accounts = append(accounts, SellerAccount{Name: name, Token: token})
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})
	return accounts
}

// DateRange representa um intervalo de datas inclusivo, com granularidade
// de dia. Invariante: Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days retorna todas as datas do intervalo, em ordem crescente.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
