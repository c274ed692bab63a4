package system

import (
	"farm-defense/internal/component"
	"farm-defense/internal/ecs"
)

// WalletOf returns id's wallet (zero when absent).
func WalletOf(w *ecs.World, id ecs.EntityID) component.Wallet {
	wl, _ := ecs.Get[component.Wallet](w, id)
	return wl
}

// Earn adds coins and gold to id's wallet.
func Earn(w *ecs.World, id ecs.EntityID, coins, gold int) {
	ecs.Update(w, id, func(wl *component.Wallet) {
		wl.Coins += coins
		wl.Gold += gold
	})
}

// Spend charges coins and gold together. Nothing is charged and false is
// returned unless both balances cover the price.
func Spend(w *ecs.World, id ecs.EntityID, coins, gold int) bool {
	wl, ok := ecs.Get[component.Wallet](w, id)
	if !ok || wl.Coins < coins || wl.Gold < gold {
		return false
	}
	wl.Coins -= coins
	wl.Gold -= gold
	w.Add(id, wl)
	return true
}

// LoseCoins removes up to n coins, never going below zero, and returns n.
func LoseCoins(w *ecs.World, id ecs.EntityID, n int) int {
	ecs.Update(w, id, func(wl *component.Wallet) { wl.Coins = max(0, wl.Coins-n) })
	return n
}
