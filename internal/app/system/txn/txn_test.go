package txn

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNotSupported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "generic error",
			err:  errors.New("some random error"),
			want: false,
		},
		{
			name: "command error code 20",
			err:  mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member"},
			want: true,
		},
		{
			name: "command error code 51",
			err:  mongo.CommandError{Code: 51, Message: "Illegal operation"},
			want: true,
		},
		{
			name: "command error code 263",
			err:  mongo.CommandError{Code: 263, Message: "Cannot run in a multi-document transaction"},
			want: true,
		},
		{
			name: "other command error code",
			err:  mongo.CommandError{Code: 100, Message: "Some other error"},
			want: false,
		},
		{
			name: "transaction on non replica set",
			err:  errors.New("transaction failed because this is not a replica set member"),
			want: true,
		},
		{
			name: "sessions not supported",
			err:  errors.New("session operations are not supported on this server"),
			want: true,
		},
		{
			name: "transaction failure alone",
			err:  errors.New("transaction failed"),
			want: false,
		},
		{
			name: "transaction session state",
			err:  errors.New("cannot start transaction in current session state"),
			want: true,
		},
		{
			name: "illegal operation message",
			err:  errors.New("illegal operation during transaction"),
			want: true,
		},
		{
			name: "uppercase message",
			err:  errors.New("TRANSACTION FAILED on REPLICA SET"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotSupported(tt.err); got != tt.want {
				t.Errorf("IsNotSupported(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
