// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

/*
Package preferences stores each user's ordered list of favorite meals.

The Service enforces the record rules: names and meals must not be blank,
favorites hold no duplicates and keep insertion order, and a record is
created by the first AddFavorite call. Storage is behind the Store
interface. BadgerStore is the production implementation.

Every mutation is a single Store.Update call. The read, the decision and
the write happen inside one BadgerDB transaction, so two concurrent
AddFavorite calls for the same user cannot lose each other's meal. A
mutation that changes nothing performs no write.

Usage:

	store, err := preferences.NewBadgerStore(preferences.StoreConfig{Path: "/data/preferences"})
	if err != nil {
	    return err
	}
	defer store.Close()

	svc := preferences.NewService(store)
	prefs, err := svc.AddFavorite(ctx, "alice", "Pizza")
*/
package preferences
