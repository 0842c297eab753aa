package sdk

import "fmt"

// FakeHost is an in-memory test double for Host. It never touches a
// real chain: state lives in a map, fund movements are logged for
// inspection, and Abort is captured rather than left to crash the test
// binary, following contract/sdkInterface.go's FakeSDK.
type FakeHost struct {
	state map[string]string
	env   Env

	timestamp  uint64
	randomByte byte

	Aborted  bool
	AbortMsg string

	Draws     []FundMovement
	Transfers []FundMovement
}

// FundMovement records one DrawFunds or TransferFunds call for
// assertions in tests.
type FundMovement struct {
	To     Address
	Amount int64
	Asset  Asset
}

// NewFakeHost builds a FakeHost acting on behalf of sender, with one
// pre-authorized "transfer.allow" intent (limit 10000, token hive) —
// the same fixture intent the teacher's NewFakeSDK seeds test calls
// with — so bet-escrow paths have something to validate against.
func NewFakeHost(sender, txID string) *FakeHost {
	return &FakeHost{
		state: make(map[string]string),
		env: Env{
			Sender: Address(sender),
			Caller: Address(sender),
			TxID:   txID,
			Intents: []Intent{
				{Type: "transfer.allow", Args: map[string]string{"limit": "10000", "token": "hive"}},
			},
		},
	}
}

func (f *FakeHost) StateSetObject(key, value string) { f.state[key] = value }

func (f *FakeHost) StateGetObject(key string) *string {
	v, ok := f.state[key]
	if !ok {
		return nil
	}
	return &v
}

func (f *FakeHost) Abort(msg string) {
	f.Aborted = true
	f.AbortMsg = msg
	panic(fmt.Sprintf("sdk: abort: %s", msg))
}

func (f *FakeHost) Log(msg string) {}

func (f *FakeHost) GetEnv() Env { return f.env }

// SetSender lets a test switch which account subsequent calls act as,
// the same way the teacher's own test fixture mutates chain.env.Sender
// directly to play both sides of a match against one in-memory state map.
func (f *FakeHost) SetSender(sender string) {
	f.env.Sender = Address(sender)
	f.env.Caller = Address(sender)
}

// SetTimestamp lets a test pin the host clock before exercising a
// timeout scenario.
func (f *FakeHost) SetTimestamp(ts uint64) { f.timestamp = ts }
func (f *FakeHost) Now() uint64            { return f.timestamp }

// SetRandomByte lets a test pin the RNG byte Session.New consumes for
// a "Random" first-move policy.
func (f *FakeHost) SetRandomByte(b byte) { f.randomByte = b }
func (f *FakeHost) RandomByte() byte     { return f.randomByte }

func (f *FakeHost) DrawFunds(amount int64, asset Asset) {
	f.Draws = append(f.Draws, FundMovement{To: f.env.Sender, Amount: amount, Asset: asset})
}

func (f *FakeHost) TransferFunds(to Address, amount int64, asset Asset) {
	f.Transfers = append(f.Transfers, FundMovement{To: to, Amount: amount, Asset: asset})
}
