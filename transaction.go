package quadplane

import "fmt"

// Transaction groups animations under a single completion callback. The
// callback runs once, when every animation added through the transaction
// has stopped, whether by finishing or by removal. Removal is synchronous,
// so removing the last live member runs the callback before RemoveAnimation
// returns.
//
//	tx := BeginTransaction()
//	tx.SetCompletion(func() { ... })
//	tx.AddAnimation(panel, "grow", anim)
//	tx.Commit()
type Transaction struct {
	completion func()
	pending    int
	committed  bool
	fired      bool
}

// BeginTransaction opens a new transaction.
func BeginTransaction() *Transaction {
	return &Transaction{}
}

// SetCompletion sets the callback. Panics after Commit.
func (tx *Transaction) SetCompletion(fn func()) {
	if tx.committed {
		panic("quadplane: SetCompletion on committed transaction")
	}
	tx.completion = fn
}

// AddAnimation attaches a to p under key and makes it a member of the
// transaction. Any OnStop already set on a still runs, before the
// transaction is notified. Panics after Commit.
func (tx *Transaction) AddAnimation(p *Panel, key string, a *Animation) {
	if tx.committed {
		panic(fmt.Sprintf("quadplane: AddAnimation(%q) on committed transaction", key))
	}
	inner := a.OnStop
	a.OnStop = func(finished bool) {
		if inner != nil {
			inner(finished)
		}
		tx.memberStopped()
	}
	tx.pending++
	p.AddAnimation(key, a)
}

// Commit closes the transaction. With no live members the completion runs
// immediately.
func (tx *Transaction) Commit() {
	if tx.committed {
		return
	}
	tx.committed = true
	tx.maybeFire()
}

// Pending returns the number of members that have not stopped.
func (tx *Transaction) Pending() int {
	return tx.pending
}

// Done reports whether the completion has run.
func (tx *Transaction) Done() bool {
	return tx.fired
}

func (tx *Transaction) memberStopped() {
	tx.pending--
	tx.maybeFire()
}

func (tx *Transaction) maybeFire() {
	if !tx.committed || tx.fired || tx.pending > 0 {
		return
	}
	tx.fired = true
	if tx.completion != nil {
		tx.completion()
	}
}
