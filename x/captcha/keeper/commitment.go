package keeper

import (
	"encoding/binary"
	"encoding/json"
	"strconv"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// GetCommitmentCount returns the highest assigned commitment index.
func (k Keeper) GetCommitmentCount(ctx sdk.Context) uint64 {
	bz := k.getStore(ctx).Get(captchatypes.CommitmentCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetCommitmentCount stores the highest assigned commitment index.
func (k Keeper) SetCommitmentCount(ctx sdk.Context, count uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	k.getStore(ctx).Set(captchatypes.CommitmentCountKey, bz)
}

// GetCommitment returns the commitment stored at an index, if present.
func (k Keeper) GetCommitment(ctx sdk.Context, id uint64) (captchatypes.CaptchaSolutionCommitment, bool) {
	bz := k.getStore(ctx).Get(captchatypes.CommitmentKey(id))
	if bz == nil {
		return captchatypes.CaptchaSolutionCommitment{}, false
	}
	var commitment captchatypes.CaptchaSolutionCommitment
	if err := json.Unmarshal(bz, &commitment); err != nil {
		panic(err)
	}
	return commitment, true
}

// SetCommitment stores a commitment at an index.
func (k Keeper) SetCommitment(ctx sdk.Context, id uint64, commitment captchatypes.CaptchaSolutionCommitment) {
	bz, err := json.Marshal(commitment)
	if err != nil {
		panic(err)
	}
	k.getStore(ctx).Set(captchatypes.CommitmentKey(id), bz)
}

// IterateCommitments walks all commitments in index order.
func (k Keeper) IterateCommitments(ctx sdk.Context, cb func(id uint64, commitment captchatypes.CaptchaSolutionCommitment) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, captchatypes.CommitmentKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var commitment captchatypes.CaptchaSolutionCommitment
		if err := json.Unmarshal(iterator.Value(), &commitment); err != nil {
			panic(err)
		}
		id := binary.BigEndian.Uint64(iterator.Key()[len(captchatypes.CommitmentKeyPrefix):])
		if cb(id, commitment) {
			break
		}
	}
}

// CommitSolution records a dapp user's solution root against a dataset's
// provider for adjudication. The caller's reputation record is created on
// first contact and the new commitment gets the next index, starting at 1.
func (k Keeper) CommitSolution(ctx sdk.Context, caller, contract sdk.AccAddress, captchaDatasetId, userMerkleTreeRoot string) (uint64, error) {
	if _, found := k.GetCaptchaData(ctx, captchaDatasetId); !found {
		return 0, sdkerrors.Wrapf(captchatypes.ErrCaptchaDataDoesNotExist, "dataset %s", captchaDatasetId)
	}
	if _, err := k.ValidateDapp(ctx, contract); err != nil {
		return 0, err
	}

	k.ensureDappUser(ctx, caller)

	id := k.GetCommitmentCount(ctx) + 1
	k.SetCommitmentCount(ctx, id)
	k.SetCommitment(ctx, id, captchatypes.CaptchaSolutionCommitment{
		Account:            caller.String(),
		CaptchaDatasetId:   captchaDatasetId,
		UserMerkleTreeRoot: userMerkleTreeRoot,
		Status:             captchatypes.StatusPending,
		Contract:           contract.String(),
	})

	k.metrics.SolutionsCommitted.Inc()

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeDappUserCommit,
		sdk.NewAttribute(captchatypes.AttributeKeyAccount, caller.String()),
		sdk.NewAttribute(captchatypes.AttributeKeyContract, contract.String()),
		sdk.NewAttribute(captchatypes.AttributeKeyDatasetId, captchaDatasetId),
		sdk.NewAttribute(captchatypes.AttributeKeyCommitmentId, strconv.FormatUint(id, 10)),
	))
	return id, nil
}

// GetCaptchaSolutionCommitment returns the commitment at an index after
// checking it belongs to the expected dataset. The dataset binding is what
// ties adjudication rights to the provider owning that dataset.
func (k Keeper) GetCaptchaSolutionCommitment(ctx sdk.Context, id uint64, expectedDatasetId string) (captchatypes.CaptchaSolutionCommitment, error) {
	commitment, found := k.GetCommitment(ctx, id)
	if !found {
		return captchatypes.CaptchaSolutionCommitment{}, sdkerrors.Wrapf(captchatypes.ErrCaptchaSolutionCommitmentDoesNotExist, "commitment %d", id)
	}
	if commitment.CaptchaDatasetId != expectedDatasetId {
		return captchatypes.CaptchaSolutionCommitment{}, sdkerrors.Wrapf(captchatypes.ErrNotAuthorised, "commitment %d belongs to dataset %s", id, commitment.CaptchaDatasetId)
	}
	return commitment, nil
}

// ProviderApprove marks a pending commitment approved, credits the user's
// correct counter and settles the fee.
func (k Keeper) ProviderApprove(ctx sdk.Context, caller sdk.AccAddress, id uint64) error {
	return k.adjudicate(ctx, caller, id, captchatypes.StatusApproved)
}

// ProviderDisapprove marks a pending commitment disapproved, credits the
// user's incorrect counter and settles the fee.
func (k Keeper) ProviderDisapprove(ctx sdk.Context, caller sdk.AccAddress, id uint64) error {
	return k.adjudicate(ctx, caller, id, captchatypes.StatusDisapproved)
}

// adjudicate applies a provider's verdict to a commitment. All reads and
// validations run before any write; a commitment that already left Pending is
// left untouched and the call succeeds, so the first verdict wins and fees
// never settle twice.
func (k Keeper) adjudicate(ctx sdk.Context, caller sdk.AccAddress, id uint64, verdict captchatypes.GovernanceStatus) error {
	provider, err := k.ValidateProvider(ctx, caller)
	if err != nil {
		return err
	}
	commitment, err := k.GetCaptchaSolutionCommitment(ctx, id, provider.CaptchaDatasetId)
	if err != nil {
		return err
	}
	contract, err := sdk.AccAddressFromBech32(commitment.Contract)
	if err != nil {
		return sdkerrors.Wrapf(captchatypes.ErrInvalidAddress, "commitment %d contract: %s", id, err)
	}
	dapp, err := k.ValidateDapp(ctx, contract)
	if err != nil {
		return err
	}
	account, err := sdk.AccAddressFromBech32(commitment.Account)
	if err != nil {
		return sdkerrors.Wrapf(captchatypes.ErrInvalidAddress, "commitment %d account: %s", id, err)
	}
	user, found := k.GetDappUser(ctx, account)
	if !found {
		return sdkerrors.Wrapf(captchatypes.ErrDappUserDoesNotExist, "user %s", commitment.Account)
	}

	if commitment.Status != captchatypes.StatusPending {
		return nil
	}

	if err := ensureSettleable(provider, dapp); err != nil {
		return err
	}

	commitment.Status = verdict
	k.SetCommitment(ctx, id, commitment)

	approved := verdict == captchatypes.StatusApproved
	if approved {
		user.CorrectCaptchas++
	} else {
		user.IncorrectCaptchas++
	}
	k.SetDappUser(ctx, account, user)

	if err := k.PayFee(ctx, caller, contract); err != nil {
		return err
	}

	verdictLabel := "disapproved"
	eventType := captchatypes.EventTypeProviderDisapprove
	if approved {
		verdictLabel = "approved"
		eventType = captchatypes.EventTypeProviderApprove
	}
	k.metrics.SolutionsAdjudicated.WithLabelValues(verdictLabel).Inc()

	if k.hooks != nil {
		if hookErr := k.hooks.AfterSolutionAdjudicated(ctx, id, account, approved); hookErr != nil {
			k.Logger(ctx).Error("solution adjudicated hook failed", "commitment", id, "error", hookErr)
		}
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		eventType,
		sdk.NewAttribute(captchatypes.AttributeKeyAccount, caller.String()),
		sdk.NewAttribute(captchatypes.AttributeKeyCommitmentId, strconv.FormatUint(id, 10)),
	))
	return nil
}
