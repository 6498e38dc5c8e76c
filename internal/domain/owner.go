package domain

// OwnerKind различает гостевую и аккаунтную корзины.
type OwnerKind int

const (
	OwnerGuest OwnerKind = iota
	OwnerAccount
)

// Owner — типизированный владелец корзины вместо разбросанных по коду
// проверок «авторизован ли пользователь». Гостевой владелец никогда
// не попадает в серверное хранилище корзин.
type Owner struct {
	Kind      OwnerKind
	AccountID string
}

func GuestOwner() Owner {
	return Owner{Kind: OwnerGuest}
}

func AccountOwner(accountID string) Owner {
	return Owner{Kind: OwnerAccount, AccountID: accountID}
}

func (o Owner) IsGuest() bool {
	return o.Kind == OwnerGuest
}
