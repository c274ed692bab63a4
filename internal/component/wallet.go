package component

import "farm-defense/internal/ecs"

const CWallet ecs.ComponentType = 7

// Wallet holds both currencies. Coins are common; gold is the scarce one.
type Wallet struct {
	Coins int
	Gold  int
}

func (Wallet) Type() ecs.ComponentType { return CWallet }
