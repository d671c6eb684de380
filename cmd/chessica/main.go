package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sanj0/chessica/chess"
	"github.com/sanj0/chessica/eval"
)

// pickMove selects a pseudo-legal move by the current wall clock
// millisecond. Crude, but plenty for stepping through positions.
func pickMove(moves []chess.Move) chess.Move {
	return moves[int(time.Now().UnixMilli())%len(moves)]
}

func findMove(moves []chess.Move, notation string) (chess.Move, bool) {
	for _, m := range moves {
		if m.String() == notation {
			return m, true
		}
	}
	return chess.Move{}, false
}

func colorName(c chess.Piece) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

func show(board *chess.Board) {
	fmt.Println(board.Pretty())
	fmt.Printf("%s to move, material %+d, en passant %v\n",
		colorName(board.Turn()), eval.Material(board), board.EnPassantTarget())
}

func main() {
	fen := flag.String("fen", chess.FENStartPos, "FEN of the starting position")
	flag.Parse()

	board, err := chess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	fmt.Println("enter a move in coordinate notation (e2e4, e7e8q), press enter")
	fmt.Println("for a random move, or type quit")
	show(board)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		moves := chess.GeneratePseudoLegal(board, board.Turn())
		if len(moves) == 0 {
			fmt.Printf("%s has no pseudo-legal moves\n", colorName(board.Turn()))
			return
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		var move chess.Move
		switch line {
		case "quit", "exit":
			return
		case "fen":
			fmt.Println(board.FEN())
			continue
		case "moves":
			for _, m := range moves {
				fmt.Printf("%s ", m)
			}
			fmt.Println()
			continue
		case "":
			move = pickMove(moves)
			fmt.Printf("playing %s\n", move)
		default:
			m, ok := findMove(moves, line)
			if !ok {
				fmt.Printf("no pseudo-legal move %q (try 'moves')\n", line)
				continue
			}
			move = m
		}

		board.Play(move)
		show(board)
	}
}
