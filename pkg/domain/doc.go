/*
Package domain contains the core domain models of the Turing machine interpreter.

It defines the alphabet and control states of a machine, the transition table that
drives it, and the result of a run. This package is kept pure and free of I/O,
decoding and execution logic.

# Key Entities

  - Symbol: a tape alphabet member. Blank marks cells the machine never wrote.
  - State: a control state. State 1 is initial, state 2 is accepting.
  - Transition: a rule (state, symbol) -> (state, symbol, direction).
  - Table: the immutable lookup built from a set of transitions.
  - Result: the snapshot read out of a halted (or stopped) machine.
*/
package domain
