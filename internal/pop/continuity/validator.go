package continuity

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/popminer/internal/pop/model"
)

// Break describes a publication that does not connect.
type Break struct {
	// Index of the publication; 0 refers to the altchain context check.
	Index int
	Err   error
	// Anchor and Blocks are newline separated hash lists for diagnostics.
	Anchor string
	Blocks string
}

func (b Break) Error() string {
	return fmt.Sprintf("publication %d: %v", b.Index, b.Err)
}

// Validate checks the first publication against btcContext and every later
// publication against its predecessor.
func Validate(btcContext [][]byte, pubs []model.Publication) []Break {
	if len(pubs) == 0 {
		return nil
	}

	var breaks []Break
	contextList := formatRaw(btcContext)
	if ok, err := ConnectsToContext(btcContext, pubs[0]); err != nil || !ok {
		breaks = append(breaks, Break{
			Index:  0,
			Err:    orNotConnected(err, fmt.Sprintf("pop transaction %s does not connect to the altchain context", pubs[0].Transaction.ID)),
			Anchor: contextList,
			Blocks: publicationList(pubs[0]),
		})
	}

	for i := 1; i < len(pubs); i++ {
		ok, err := Connect(pubs[i-1], pubs[i])
		if err == nil && ok {
			continue
		}
		breaks = append(breaks, Break{
			Index:  i,
			Err:    orNotConnected(err, "does not connect to the previous publication"),
			Anchor: publicationList(pubs[i-1]),
			Blocks: publicationList(pubs[i]),
		})
	}
	return breaks
}

// Validator logs continuity breaks without failing the operation.
type Validator struct {
	logger *zap.Logger
}

// NewValidator builds a Validator.
func NewValidator(logger *zap.Logger) *Validator {
	return &Validator{logger: logger.Named("continuity")}
}

// Log validates pubs and logs every break. It reports whether the chain is intact.
func (v *Validator) Log(btcContext [][]byte, pubs []model.Publication) bool {
	breaks := Validate(btcContext, pubs)
	for _, b := range breaks {
		v.logger.Error("publication continuity broken",
			zap.Int("index", b.Index),
			zap.Error(b.Err),
			zap.String("anchor_blocks", b.Anchor),
			zap.String("publication_blocks", b.Blocks),
		)
	}
	if len(breaks) == 0 && len(pubs) > 0 {
		v.logger.Debug("publications connect", zap.Int("count", len(pubs)))
	}
	return len(breaks) == 0
}

func orNotConnected(err error, msg string) error {
	if err != nil {
		return err
	}
	return errors.New(msg)
}

func publicationList(pub model.Publication) string {
	headers, err := ExtractBitcoinBlocks(pub.Transaction)
	if err != nil {
		return err.Error()
	}
	return FormatHashes(BlockHashes(headers))
}

func formatRaw(hashes [][]byte) string {
	lines := make([]string, len(hashes))
	for i, h := range hashes {
		lines[i] = hex.EncodeToString(h)
	}
	return strings.Join(lines, "\n")
}
