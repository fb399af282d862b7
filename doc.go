/*
Package turing is an interpreter for single-tape Turing machines written in a
compact unary encoding.

A program is a sequence of transition records separated by "11". Each record is
five runs of zeros separated by single ones:

	0^q 1 0^s 1 0^q' 1 0^s' 1 0^d

meaning "in state q reading symbol s, enter state q', write s' and move left
(d = 1) or right (d = 2)". A field's value is the length of its run. State 1 is
initial and state 2 is accepting. A machine halts when no rule matches its
current state and the symbol under the head.

Tapes are decimal digits; digit d is the symbol d+1. Cells the machine walks
onto are filled with the blank symbol (11 unless configured otherwise).

# Usage

	interp, err := turing.New("0100100100100")
	if err != nil {
		log.Fatal(err)
	}

	res, err := interp.Run(context.Background(), "1")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.State, res.Steps, res.Accepted)

Runs are unbounded by default. Use WithMaxSteps or a cancellable context to
stop machines that never halt.
*/
package turing
