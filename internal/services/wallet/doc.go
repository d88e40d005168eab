/*
Package wallet opens wallets for customers and lists them.

New wallets start with zero balances and keep the capability flags given at
creation. Wallet names are unique across all customers.

Listings are read through the cache under cache.WalletsKey. Any operation
that changes a customer's wallets or their balances must call
InvalidateWallets once it has committed.

Usage:

	svc := wallet.NewService(store, customers, redisCache)

	resp, err := svc.AddWallet(ctx, customer, wallet.CreateWalletRequest{
	    WalletName:        "groceries",
	    Currency:          "TRY",
	    ActiveForShopping: true,
	})

	wallets, err := svc.ListWallets(ctx, customer)
*/
package wallet
